// Package importer runs the membership import: it loads the server
// snapshot, walks the directory records in file order and reconciles
// each one against the server.
package importer

import (
	"github.com/elabtools/elabsync/internal/elabsync/directory"
	"github.com/elabtools/elabsync/internal/elabsync/elabapi"
	apperrors "github.com/elabtools/elabsync/internal/elabsync/errors"
	"github.com/elabtools/elabsync/internal/elabsync/snapshot"
	"github.com/elabtools/elabsync/internal/log"
)

// Importer reconciles directory records against one server.
type Importer struct {
	api     *elabapi.Client
	columns directory.ColumnMap
	snap    *snapshot.Snapshot
}

// New builds an importer talking to api. A nil columns map selects the
// built-in spreadsheet header mapping.
func New(api *elabapi.Client, columns directory.ColumnMap) *Importer {
	return &Importer{api: api, columns: columns}
}

// stats tallies the per-run outcome counts for the summary line.
type stats struct {
	added   int
	already int
	skipped int
}

func (st *stats) count(res Result) {
	switch res {
	case ResultAdded:
		st.added++
	case ResultAlreadyMember:
		st.already++
	}
}

// Process runs the full import for the spreadsheet at source. No record
// is touched unless the snapshot loads completely; a row-local error
// skips that record only, anything else aborts the run.
func (im *Importer) Process(source string) error {
	log.Info("Reading server state from %s", im.api.Url)
	snap, err := snapshot.Load(im.api)
	if err != nil {
		return apperrors.Wrap(err, "snapshot load failed")
	}
	im.snap = snap

	log.Info("Processing %s", source)
	records, err := directory.Load(source, im.columns)
	if err != nil {
		return apperrors.Wrapf(err, "failed to load user directory %s", source)
	}

	var st stats
	for _, rec := range records {
		log.InfoH2("Processing %s %s <%s>", rec.Firstname, rec.Lastname, rec.Email)

		if err := im.reconcile(rec, &st); err != nil {
			if apperrors.IsRowError(err) {
				log.ErrorH2("%v - skipped to next record", err)
				st.skipped++
				continue
			}
			return err
		}
	}

	log.Info("Processing completed: %d added, %d already members, %d records skipped",
		st.added, st.already, st.skipped)

	im.report()
	return nil
}

// reconcile applies both membership checks for one record. The first
// failure wins: a record whose team membership cannot be established is
// not considered for its teamgroup either.
func (im *Importer) reconcile(rec directory.Record, st *stats) error {
	res, err := im.EnsureTeamMembership(rec.Email, rec.Team)
	if err != nil {
		return err
	}
	st.count(res)

	res, err = im.EnsureTeamgroupMembership(rec.Email, rec.Team, rec.Teamgroup)
	if err != nil {
		return err
	}
	st.count(res)

	return nil
}

// report re-fetches the snapshot purely for post-run verification. The
// run outcome is already settled; a failure here is only logged.
func (im *Importer) report() {
	refreshed, err := snapshot.Load(im.api)
	if err != nil {
		log.Error("post-run snapshot refresh failed: %v", err)
		return
	}
	users, teams, groups := refreshed.Counts()
	log.InfoH2("Server now holds %d users, %d teams, %d teamgroups", users, teams, groups)
}
