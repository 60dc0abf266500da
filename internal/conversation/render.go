package conversation

import (
	"fmt"
	"html"
	"strconv"

	"github.com/popeskul/tg-forwarder/internal/models"
	"github.com/popeskul/tg-forwarder/internal/telegram"
)

// PageSize is the number of contacts per picker page.
const PageSize = 20

const (
	msgMenu              = "<b>🤖 Bot Remote Control</b>\n\nSelect an action:"
	msgPromptNumber      = "Please enter the phone number (e.g., +972...):"
	msgInvalidNumber     = "❌ That does not look like a phone number. Please enter digits only (e.g., +972...):"
	msgPromptSearch      = "Enter name to search:"
	msgPermissionDenied  = "❌ SMS permission not granted. Please open the app and allow SMS permissions."
	msgContactsFailed    = "❌ Could not read contacts."
	btnSendToNumber      = "📨 Send SMS to Number"
	btnSendToContact     = "👤 Send SMS to Contact"
	btnPrev              = "⬅️ Prev"
	btnSearch            = "🔍 Search"
	btnNext              = "Next ➡️"
	btnBackToContactList = "🔙 Back to Menu"
)

func menuKeyboard() telegram.Keyboard {
	return telegram.Keyboard{
		{{Text: btnSendToNumber, Data: CmdSMSNumber}},
		{{Text: btnSendToContact, Data: CmdSMSContact}},
	}
}

func promptBodyForNumber(number string) string {
	return fmt.Sprintf("Enter the message to send to %s:", html.EscapeString(number))
}

func promptBodyForContact(display string) string {
	return fmt.Sprintf("Enter message for %s:", html.EscapeString(display))
}

func smsSent(display string) string {
	return fmt.Sprintf("✅ SMS sent to %s", html.EscapeString(display))
}

func smsFailed(err error) string {
	return fmt.Sprintf("❌ Failed to send SMS: %s", html.EscapeString(err.Error()))
}

func pageTitle(page int) string {
	return fmt.Sprintf("<b>Select a Contact (Page %d):</b>", page+1)
}

func searchTitle(query string) string {
	return fmt.Sprintf("<b>Search Results for '%s':</b>", html.EscapeString(query))
}

func noResults(query string) string {
	return fmt.Sprintf("No contacts found for '%s'.", html.EscapeString(query))
}

// contactRows renders one button per contact. Contacts whose payload would
// exceed the callback_data limit are left out.
func contactRows(list []models.Contact) telegram.Keyboard {
	rows := make(telegram.Keyboard, 0, len(list)+1)
	for _, c := range list {
		data := ContactPrefix + compactNumber(c.PhoneNumber)
		if len(data) > telegram.MaxCallbackData || data == ContactPrefix {
			continue
		}
		label := c.DisplayName
		if label == "" {
			label = c.PhoneNumber
		}
		rows = append(rows, []telegram.Button{{Text: label, Data: data}})
	}
	return rows
}

func pageKeyboard(list []models.Contact, page int, hasNext bool) telegram.Keyboard {
	rows := contactRows(list)

	nav := make([]telegram.Button, 0, 3)
	if page > 0 {
		nav = append(nav, telegram.Button{Text: btnPrev, Data: PagePrefix + strconv.Itoa(page-1)})
	}
	nav = append(nav, telegram.Button{Text: btnSearch, Data: CmdSearchContact})
	if hasNext {
		nav = append(nav, telegram.Button{Text: btnNext, Data: PagePrefix + strconv.Itoa(page+1)})
	}

	return append(rows, nav)
}

func searchKeyboard(list []models.Contact) telegram.Keyboard {
	rows := contactRows(list)
	return append(rows, []telegram.Button{{Text: btnBackToContactList, Data: CmdSMSContact}})
}
