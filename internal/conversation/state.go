// Package conversation drives the per-chat remote command dialogue.
//
// Transition is a pure function from the current row and an inbound event to
// the next row and a list of effects. The Engine owns the chat table and
// carries the effects out.
package conversation

import (
	"regexp"
	"strconv"
	"strings"
)

type State int

const (
	Idle State = iota
	AwaitingNumber
	AwaitingSmsBodyForNumber
	BrowsingContacts
	SearchingContacts
	AwaitingSmsBodyForContact
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case AwaitingNumber:
		return "awaiting_number"
	case AwaitingSmsBodyForNumber:
		return "awaiting_sms_body_for_number"
	case BrowsingContacts:
		return "browsing_contacts"
	case SearchingContacts:
		return "searching_contacts"
	case AwaitingSmsBodyForContact:
		return "awaiting_sms_body_for_contact"
	default:
		return "unknown"
	}
}

// Callback payloads.
const (
	CmdSMSNumber     = "cmd_sms_number"
	CmdSMSContact    = "cmd_sms_contact"
	CmdSearchContact = "cmd_search_contact"
	PagePrefix       = "page_"
	ContactPrefix    = "c:"
)

// Scratch is the data a multi-step command carries between updates.
type Scratch struct {
	PendingNumber string
	PendingName   string
}

// Row is one chat's entry in the conversation table.
type Row struct {
	State   State
	Scratch Scratch
}

type EventKind int

const (
	TextEvent EventKind = iota
	CallbackEvent
)

type Event struct {
	Kind EventKind
	Text string
	Data string
}

// Effect is an action the Engine performs after a transition.
type Effect interface {
	effect()
}

type ShowMenu struct{}

type Prompt struct {
	Text string
}

type ShowContactPage struct {
	Page int
}

type SearchContacts struct {
	Query string
}

// SelectContact resolves the number to a name and asks for the body.
type SelectContact struct {
	Number string
}

type SendSMS struct {
	Number  string
	Body    string
	Display string
}

func (ShowMenu) effect()        {}
func (Prompt) effect()          {}
func (ShowContactPage) effect() {}
func (SearchContacts) effect()  {}
func (SelectContact) effect()   {}
func (SendSMS) effect()         {}

var phonePattern = regexp.MustCompile(`^\+?[0-9]{3,20}$`)

// Transition computes the next row and the effects for ev.
func Transition(row Row, ev Event) (Row, []Effect) {
	switch ev.Kind {
	case TextEvent:
		return onText(row, ev.Text)
	case CallbackEvent:
		return onCallback(row, ev.Data)
	default:
		return row, nil
	}
}

func onText(row Row, text string) (Row, []Effect) {
	trimmed := strings.TrimSpace(text)
	if isResetCommand(trimmed) {
		return Row{State: Idle}, []Effect{ShowMenu{}}
	}

	switch row.State {
	case AwaitingNumber:
		number := compactNumber(trimmed)
		if !phonePattern.MatchString(number) {
			return row, []Effect{Prompt{Text: msgInvalidNumber}}
		}
		return Row{
				State:   AwaitingSmsBodyForNumber,
				Scratch: Scratch{PendingNumber: number},
			}, []Effect{
				Prompt{Text: promptBodyForNumber(number)},
			}

	case AwaitingSmsBodyForNumber:
		number := row.Scratch.PendingNumber
		if number == "" {
			return Row{State: Idle}, []Effect{ShowMenu{}}
		}
		return Row{State: Idle}, []Effect{SendSMS{Number: number, Body: text, Display: number}}

	case AwaitingSmsBodyForContact:
		number := row.Scratch.PendingNumber
		if number == "" {
			return Row{State: Idle}, []Effect{ShowMenu{}}
		}
		display := row.Scratch.PendingName
		if display == "" {
			display = number
		}
		return Row{State: Idle}, []Effect{SendSMS{Number: number, Body: text, Display: display}}

	case SearchingContacts:
		if trimmed == "" {
			return Row{State: Idle}, []Effect{ShowMenu{}}
		}
		return Row{State: SearchingContacts}, []Effect{SearchContacts{Query: trimmed}}

	default:
		return Row{State: Idle}, []Effect{ShowMenu{}}
	}
}

func onCallback(row Row, data string) (Row, []Effect) {
	switch data {
	case CmdSMSNumber:
		return Row{State: AwaitingNumber}, []Effect{Prompt{Text: msgPromptNumber}}
	case CmdSMSContact:
		return Row{State: BrowsingContacts}, []Effect{ShowContactPage{Page: 0}}
	}

	if row.State != BrowsingContacts && row.State != SearchingContacts {
		return Row{State: Idle}, []Effect{ShowMenu{}}
	}

	switch {
	case data == CmdSearchContact:
		return Row{State: SearchingContacts}, []Effect{Prompt{Text: msgPromptSearch}}

	case strings.HasPrefix(data, PagePrefix):
		page, err := strconv.Atoi(strings.TrimPrefix(data, PagePrefix))
		if err != nil || page < 0 {
			return Row{State: Idle}, []Effect{ShowMenu{}}
		}
		return Row{State: BrowsingContacts}, []Effect{ShowContactPage{Page: page}}

	case strings.HasPrefix(data, ContactPrefix):
		number := compactNumber(strings.TrimPrefix(data, ContactPrefix))
		if number == "" {
			return Row{State: Idle}, []Effect{ShowMenu{}}
		}
		return Row{
				State:   AwaitingSmsBodyForContact,
				Scratch: Scratch{PendingNumber: number},
			}, []Effect{
				SelectContact{Number: number},
			}
	}

	return Row{State: Idle}, []Effect{ShowMenu{}}
}

func isResetCommand(text string) bool {
	lower := strings.ToLower(text)
	return strings.HasPrefix(lower, "/start") ||
		lower == "/help" || lower == "help" ||
		lower == "/menu" || lower == "menu"
}

// compactNumber strips whitespace and common separators.
func compactNumber(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '\n', '-', '(', ')', '.':
			return -1
		}
		return r
	}, s)
}
