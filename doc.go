// Package notepad is the Composition Root for the notes application.
//
// It connects the note store (pkg/core) with the JSON file adapter
// (pkg/adapters/fs) and runs both behind a single-owner event loop.
//
// Model:
//
// The whole application state is a core.Model: a map of notes keyed by ID,
// a soft selection cursor and one error slot. It changes only through
// core.Model.Apply, one discrete message at a time. Import and export are
// intents that the core.Service resolves against the repository before the
// result is applied, so a failed read or parse never touches the notes.
//
// Features:
//
//   - **Reducer State**: Create, select, retitle, edit and recolor notes.
//   - **Whole-File Persistence**: Import and export a single notes.json document; writes are atomic.
//   - **Error Slot**: The last failure is kept for display until dismissed or replaced.
//   - **Background I/O**: Optional off-loop file access with results applied on the loop.
//   - **Change Detection**: Optional watcher that flags foreign edits to the document.
//
// Usage:
//
//	rt, err := notepad.New(notepad.WithFile("notes.json"))
//	if err != nil {
//		return err
//	}
//	rt.Service.Dispatch(ctx, core.CreateNote{})
//	rt.Service.Dispatch(ctx, core.UpdateTitle{Title: "Groceries"})
//	rt.Service.Dispatch(ctx, core.ExportNotes{})
package notepad
