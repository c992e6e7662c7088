// Package view builds the JSON view models the page shell renders.
// Everything user-visible — labels, dates, empty states, error copy —
// is produced here so the wording stays in one place and under test.
package view

// User-facing copy. The empty-state and failure messages for a list
// are deliberately distinct and must never be swapped: "no rows" is a
// normal outcome, a failed fetch is not.
const (
	MsgMissingArticleID = "No article ID was provided."
	MsgArticleLoad      = "Could not load this article."
	MsgImportantUpdate  = "Could not update important status. Please try again or contact an administrator."
	MsgPinFailed        = "Could not pin this article. Please try again."
	MsgUnpinFailed      = "Could not unpin this article. Please try again."
	MsgFlagReason       = "Please enter a reason for flagging this article."
	MsgFlagFailed       = "Could not submit your flag. Please try again."
	MsgFlagThanks       = "Thank you — your flag has been submitted."
	MsgCredentials      = "Please enter both email and password."
	MsgLogoutFailed     = "There was a problem logging you out. Please try again."

	MsgImportantEmpty = "No important articles have been pinned yet."
	MsgImportantError = "Could not load important articles."
	MsgPinnedEmpty    = "You have not pinned any articles yet."
	MsgPinnedError    = "Could not load your pinned articles."
	MsgArticlesEmpty  = "No articles yet."
	MsgArticlesError  = "Sorry, there was a problem loading the articles."
)

// Labels for the two toggle buttons, keyed by current state.
const (
	LabelMarkImportant   = "Mark as important"
	LabelUnmarkImportant = "Remove from important"
	LabelPin             = "Pin this article"
	LabelUnpin           = "Unpin this article"
)
