package platform

import (
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/aretw0/notepad/pkg/adapters/fs"
	"github.com/aretw0/notepad/pkg/core"
)

// Preview is the difference between the in-memory notes and the document
// on disk, as an import would apply it.
type Preview struct {
	Changed bool
	// Text marks removals as [-...-] and additions as {+...+}.
	Text string
}

// Diff compares notes, encoded the way an export would write them, with the
// document currently on disk.
func Diff(repo *fs.Repository, notes core.Notes) (Preview, error) {
	current, err := repo.Encode(notes)
	if err != nil {
		return Preview{}, err
	}
	disk, err := repo.ReadRaw()
	if err != nil {
		return Preview{}, err
	}

	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(string(current), string(disk), false)
	diffs = dmp.DiffCleanupSemantic(diffs)

	var b strings.Builder
	changed := false
	for _, d := range diffs {
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			changed = true
			b.WriteString("{+" + d.Text + "+}")
		case diffmatchpatch.DiffDelete:
			changed = true
			b.WriteString("[-" + d.Text + "-]")
		default:
			b.WriteString(d.Text)
		}
	}

	return Preview{Changed: changed, Text: b.String()}, nil
}
