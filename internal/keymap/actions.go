// Package keymap defines the key bindings of the lyrics viewer.
package keymap

// Action represents a user-triggerable action.
type Action string

const (
	ActionQuit Action = "quit"
	ActionHelp Action = "help"

	// Scrolling
	ActionScrollUp   Action = "scroll_up"
	ActionScrollDown Action = "scroll_down"
	ActionPageUp     Action = "page_up"
	ActionPageDown   Action = "page_down"
	ActionJumpStart  Action = "jump_start"
	ActionJumpEnd    Action = "jump_end"
	ActionFollow     Action = "follow" // re-center on the current line

	// Preview clock
	ActionPlayPause   Action = "play_pause"
	ActionSeekForward Action = "seek_forward"
	ActionSeekBack    Action = "seek_back"
	ActionRewind      Action = "rewind"

	// Search
	ActionSearch    Action = "search"
	ActionNextMatch Action = "next_match"
	ActionPrevMatch Action = "prev_match"
)
