package reorganizer

import (
	"go.uber.org/zap"

	out "github.com/n2code/reorganizer/internal/output"
)

func (r *reorganizer) Run() (summary Summary, err error) {
	r.log.Info("reorganization started", zap.String("base", r.layout.Base))
	r.printBanner(out.Normal, "PROJECT REORGANIZATION")
	defer func() {
		if err != nil {
			r.log.Error("reorganization aborted", zap.Error(err))
		}
	}()

	if err = r.EnsureArchive(); err != nil {
		return
	}
	summary.ArchiveReady = true

	if summary.Archived, err = r.Archive(); err != nil {
		return
	}
	if summary.Promoted, err = r.Promote(); err != nil {
		return
	}

	summary.CleanupErr = r.Cleanup()
	summary.Cleaned = summary.CleanupErr == nil

	summary.Verification = r.Verify()
	summary.Verified = true
	r.PrintVerification(summary.Verification)
	r.printBanner(out.Normal, "DONE")

	r.log.Info("reorganization finished",
		zap.Int("moved", summary.Archived.Count()),
		zap.Int("copied", summary.Promoted.Count()),
		zap.Int("failed", len(summary.Archived.Failed)+len(summary.Promoted.Failed)),
		zap.Bool("cleaned", summary.Cleaned))
	return
}
