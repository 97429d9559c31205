package view

import "context"

// Inline edit state machine: idle -> editing(id, draft) -> idle. Only one
// task can be in editing at a time; starting an edit for another task
// implicitly abandons the previous one.

// StartEdit enters editing for id, seeding the draft with the task's
// current title. It reports false when id is not on the current page.
func (r *Reconciler) StartEdit(id string) bool {
	for _, t := range r.tasks {
		if t.ID == id {
			r.editID = id
			r.draft = t.Title
			return true
		}
	}
	return false
}

// Editing returns the id of the task being edited, if any.
func (r *Reconciler) Editing() (string, bool) {
	return r.editID, r.editID != ""
}

// Draft returns the in-progress title text.
func (r *Reconciler) Draft() string { return r.draft }

// SetDraft replaces the in-progress title text.
func (r *Reconciler) SetDraft(s string) {
	if r.editID != "" {
		r.draft = s
	}
}

// CancelEdit abandons the in-progress edit.
func (r *Reconciler) CancelEdit() {
	r.editID = ""
	r.draft = ""
}

// ConfirmEdit renames the edited task to the draft and returns to idle on
// success. The edit is kept open on failure so the draft can be corrected.
func (r *Reconciler) ConfirmEdit(ctx context.Context) error {
	if r.editID == "" {
		return nil
	}
	if err := r.Rename(ctx, r.editID, r.draft); err != nil {
		return err
	}
	r.CancelEdit()
	return nil
}
