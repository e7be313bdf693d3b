package reorganizer

// Reorganizer lets you reorganize a project directory whose handle was retrieved using New.
type Reorganizer interface {

	// Run executes all steps in order: EnsureArchive, Archive, Promote, Cleanup, and finally the verification.
	// Only step-fatal conditions are returned as error, in which case the summary covers the steps completed so far.
	// Failures concerning single entries are reported and recorded in the summary but do not stop the run.
	Run() (Summary, error)

	// EnsureArchive creates the archive directory unless it exists already.
	EnsureArchive() error

	// Archive moves every top-level entry of the base directory into the archive directory, in lexicographic order.
	// Excluded names are skipped. Entries whose name is already taken inside the archive are left in place.
	// An error is only returned if the base directory cannot be listed.
	Archive() (StepResult, error)

	// Promote copies every non-hidden entry of the source directory to the base directory, in lexicographic order.
	// Same-named entries at the base are deleted beforehand WITHOUT backup.
	// If the source directory does not exist an error wrapping ErrSourceMissing is returned and nothing is changed.
	Promote() (StepResult, error)

	// Cleanup removes the source directory including its remaining contents.
	Cleanup() error

	// Verify inspects the base directory without changing anything.
	Verify() VerificationReport

	// PrintVerification outputs the verification report in human-readable form.
	PrintVerification(report VerificationReport)
}

// StepResult records what happened to each entry during Archive or Promote.
type StepResult struct {
	Done     []string       //entries moved or copied successfully
	Skipped  []string       //entries ignored on purpose (excluded or hidden)
	Existing []string       //entries left alone because their destination was taken
	Failed   []EntryFailure //entries whose processing failed
}

// Count returns the number of successfully processed entries.
func (r StepResult) Count() int {
	return len(r.Done)
}

// EntryFailure pairs the name of an entry with the reason it could not be processed.
type EntryFailure struct {
	Name string
	Err  error
}

// ProjectKind classifies the manifest found at the base directory.
type ProjectKind int

const (
	NoManifest ProjectKind = iota
	NewProject
	OldProject
	UnreadableManifest
)

func (k ProjectKind) String() string {
	switch k {
	case NewProject:
		return "new project"
	case OldProject:
		return "old project"
	case UnreadableManifest:
		return "unreadable manifest"
	default:
		return "no manifest"
	}
}

// ArchiveEntry is a top-level entry found inside the archive directory.
type ArchiveEntry struct {
	Name string
	Dir  bool
}

// VerificationReport is the read-only assessment of the base directory after (or without) a run.
type VerificationReport struct {
	HasManifest    bool
	HasAppDir      bool
	HasArchive     bool
	Project        ProjectKind
	ManifestErr    error
	ArchiveEntries []ArchiveEntry
	ArchiveErr     error
}

// Summary bundles the outcome of all steps of a run.
type Summary struct {
	ArchiveReady bool
	Archived     StepResult
	Promoted     StepResult
	Cleaned      bool
	CleanupErr   error
	Verified     bool
	Verification VerificationReport
}
