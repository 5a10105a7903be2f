package history

// Log is the two-stack undo/redo engine over the append-only action log.
// Committed actions live on one stack; undone actions move to the redo
// stack, most recently undone last. Any new commit invalidates the old
// timeline and clears the redo side.
//
// Log is not safe for concurrent use; the board mutates it from a single
// writer.
type Log struct {
	actions []Action
	redo    []Action
}

// Commit appends a to the log and clears the redo stack.
func (l *Log) Commit(a Action) {
	l.actions = append(l.actions, a)
	l.redo = l.redo[:0]
}

// Undo moves the most recent action onto the redo stack. It reports whether
// anything changed; undoing an empty log is a no-op.
func (l *Log) Undo() bool {
	if len(l.actions) == 0 {
		return false
	}
	last := l.actions[len(l.actions)-1]
	l.actions = l.actions[:len(l.actions)-1]
	l.redo = append(l.redo, last)
	return true
}

// Redo moves the most recently undone action back onto the log. It reports
// whether anything changed; redoing with an empty redo stack is a no-op.
func (l *Log) Redo() bool {
	if len(l.redo) == 0 {
		return false
	}
	last := l.redo[len(l.redo)-1]
	l.redo = l.redo[:len(l.redo)-1]
	l.actions = append(l.actions, last)
	return true
}

// ClearRedo drops the redo stack without touching the log. Starting a new
// stroke calls this so a gesture in progress already commits the user to the
// new timeline.
func (l *Log) ClearRedo() {
	l.redo = l.redo[:0]
}

// Reset clears both stacks.
func (l *Log) Reset() {
	l.actions = nil
	l.redo = nil
}

// UndoCount returns the number of actions that can be undone.
func (l *Log) UndoCount() int { return len(l.actions) }

// RedoCount returns the number of undone actions that can be reapplied.
func (l *Log) RedoCount() int { return len(l.redo) }

// Actions returns the committed actions in commit order. The slice is shared
// for the current tick; callers must not hold it across mutations.
func (l *Log) Actions() []Action { return l.actions }

// Visible projects the committed log into the currently visible strokes.
func (l *Log) Visible() []Stroke { return Project(l.actions) }
