//go:build !windows

package reorganizer

import "testing"

func TestPleasantPath(t *testing.T) {
	type args struct {
		absolute string
		base     string
		wd       string
	}
	tests := []struct {
		name string
		args args
		want string
	}{
		{name: "NextToEntryInBase", args: args{absolute: "/my/project/old", base: "/my/project", wd: "/my/project"}, want: "./old"},
		{name: "EntryInSubFromBase", args: args{absolute: "/my/project/old/app", base: "/my/project", wd: "/my/project"}, want: "./old/app"},
		{name: "EntryInBaseFromSub", args: args{absolute: "/my/project/app", base: "/my/project", wd: "/my/project/old"}, want: "../app"},
		{name: "EntryInBaseFromDeep", args: args{absolute: "/my/project/app", base: "/my/project", wd: "/my/project/old/app"}, want: "../../app"},
		{name: "NextToEntryInSub", args: args{absolute: "/my/project/old/app", base: "/my/project", wd: "/my/project/old"}, want: "./app"},
		{name: "BaseItself", args: args{absolute: "/my/project", base: "/my/project", wd: "/my/project"}, want: "."},
		{name: "BaseFromSub", args: args{absolute: "/my/project", base: "/my/project", wd: "/my/project/old"}, want: ".."},
		{name: "OutsideBase", args: args{absolute: "/my/project/old/app", base: "/my/project", wd: "/"}, want: "base://old/app"},
		{name: "BarelyOutsideBase", args: args{absolute: "/my/project/old/app", base: "/my/project", wd: "/my"}, want: "base://old/app"},
		{name: "SiblingOfBase", args: args{absolute: "/my/project/old", base: "/my/project", wd: "/my/other"}, want: "base://old"},
		{name: "BaseFromOutside", args: args{absolute: "/my/project", base: "/my/project", wd: "/tmp"}, want: "base://"},
		{name: "TargetOutsideBase", args: args{absolute: "/etc/hosts", base: "/my/project", wd: "/my/project"}, want: "/etc/hosts"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := pleasantPath(tt.args.absolute, tt.args.base, tt.args.wd); got != tt.want {
				t.Errorf("pleasantPath() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsChildOf(t *testing.T) {
	tests := []struct {
		child  string
		parent string
		want   bool
	}{
		{"/a/b", "/a", true},
		{"/a/b/c", "/a", true},
		{"/a", "/a", false},
		{"/a", "/a/b", false},
		{"/ab", "/a", false},
		{"/a/..b", "/a", true},
	}
	for _, tt := range tests {
		if got := isChildOf(tt.child, tt.parent); got != tt.want {
			t.Errorf("isChildOf(%q, %q) = %v, want %v", tt.child, tt.parent, got, tt.want)
		}
	}
}

func TestValidateName(t *testing.T) {
	for _, good := range []string{"old", "outlivion-miniapp", ".git", "package.json", "..hidden"} {
		if err := validateName(good); err != nil {
			t.Errorf("validateName(%q) unexpectedly failed: %s", good, err)
		}
	}
	for _, bad := range []string{"", ".", "..", "a/b", `a\b`, "/old"} {
		if err := validateName(bad); err == nil {
			t.Errorf("validateName(%q) unexpectedly succeeded", bad)
		}
	}
}

func TestDisplayablePathWithoutWorkingDirectory(t *testing.T) {
	r := &reorganizer{layout: DefaultLayout("/my/project")}

	tests := []struct {
		absolute string
		want     string
	}{
		{"/my/project/outlivion-miniapp", "base://outlivion-miniapp"},
		{"/my/project/old/app/", "base://old/app"},
		{"/my/project", "base://"},
		{"/etc/hosts", "/etc/hosts"},
	}
	for _, tt := range tests {
		if got := r.displayablePath(tt.absolute); got != tt.want {
			t.Errorf("displayablePath(%q) = %q, want %q", tt.absolute, got, tt.want)
		}
	}
}
