package conversation

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"

	"github.com/popeskul/tg-forwarder/internal/device"
	"github.com/popeskul/tg-forwarder/internal/models"
	"github.com/popeskul/tg-forwarder/internal/telegram"
)

//go:generate mockgen -source=engine.go -destination=mocks/mock_engine.go -package=mocks

// Replier delivers bot output to the chat.
type Replier interface {
	Reply(chatID int64, text string, keyboard telegram.Keyboard)
	Acknowledge(callbackID, text string)
}

// ContactDirectory is the contact lookup capability.
type ContactDirectory interface {
	NameByNumber(ctx context.Context, number string) (string, bool)
	Page(ctx context.Context, offset, limit int) ([]models.Contact, error)
	Search(ctx context.Context, query string, limit int) ([]models.Contact, error)
}

// SMSSender is the device send-SMS capability.
type SMSSender interface {
	SendSMS(ctx context.Context, number, body string) error
}

// Engine applies transitions to the chat table. Handle is called by a single
// goroutine, the poller; the mutex only guards the map for State readers.
type Engine struct {
	replier  Replier
	contacts ContactDirectory
	sms      SMSSender
	logger   *zap.Logger

	mu   sync.RWMutex
	rows map[int64]*Row
}

func NewEngine(replier Replier, contacts ContactDirectory, sms SMSSender, logger *zap.Logger) *Engine {
	return &Engine{
		replier:  replier,
		contacts: contacts,
		sms:      sms,
		logger:   logger,
		rows:     make(map[int64]*Row),
	}
}

// Handle processes one update to completion before returning.
func (e *Engine) Handle(ctx context.Context, u telegram.Update) {
	var ev Event
	switch u.Kind {
	case telegram.KindText:
		ev = Event{Kind: TextEvent, Text: u.Text}
	case telegram.KindCallback:
		e.replier.Acknowledge(u.CallbackID, "")
		ev = Event{Kind: CallbackEvent, Data: u.Data}
	default:
		return
	}

	row := e.row(u.ChatID)
	prev := row.State

	next, effects := Transition(*row, ev)
	e.store(u.ChatID, next)

	e.logger.Debug("Conversation transition",
		zap.Int64("updateID", u.ID),
		zap.Stringer("from", prev),
		zap.Stringer("to", next.State),
		zap.Int("effects", len(effects)))

	for _, eff := range effects {
		e.apply(ctx, u.ChatID, eff)
	}
}

// State returns the current state for chatID. Unseen chats are Idle.
func (e *Engine) State(chatID int64) State {
	e.mu.RLock()
	defer e.mu.RUnlock()
	if r, ok := e.rows[chatID]; ok {
		return r.State
	}
	return Idle
}

// Reset drops every row, as after a restart.
func (e *Engine) Reset() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.rows = make(map[int64]*Row)
}

func (e *Engine) row(chatID int64) *Row {
	e.mu.RLock()
	r, ok := e.rows[chatID]
	e.mu.RUnlock()
	if ok {
		cp := *r
		return &cp
	}
	return &Row{State: Idle}
}

func (e *Engine) store(chatID int64, r Row) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.rows[chatID] = &r
}

func (e *Engine) update(chatID int64, fn func(*Row)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	r, ok := e.rows[chatID]
	if !ok {
		r = &Row{State: Idle}
		e.rows[chatID] = r
	}
	fn(r)
}

func (e *Engine) resetToMenu(chatID int64) {
	e.store(chatID, Row{State: Idle})
	e.replier.Reply(chatID, msgMenu, menuKeyboard())
}

func (e *Engine) apply(ctx context.Context, chatID int64, eff Effect) {
	switch eff := eff.(type) {
	case ShowMenu:
		e.replier.Reply(chatID, msgMenu, menuKeyboard())

	case Prompt:
		e.replier.Reply(chatID, eff.Text, nil)

	case ShowContactPage:
		e.showPage(ctx, chatID, eff.Page)

	case SearchContacts:
		e.search(ctx, chatID, eff.Query)

	case SelectContact:
		display := eff.Number
		if name, ok := e.contacts.NameByNumber(ctx, eff.Number); ok {
			display = name
			e.update(chatID, func(r *Row) { r.Scratch.PendingName = name })
		}
		e.replier.Reply(chatID, promptBodyForContact(display), nil)

	case SendSMS:
		e.sendSMS(ctx, chatID, eff)
	}
}

func (e *Engine) showPage(ctx context.Context, chatID int64, page int) {
	list, err := e.contacts.Page(ctx, page*PageSize, PageSize+1)
	if err != nil {
		e.logger.Error("Failed to load contact page", zap.Int("page", page), zap.Error(err))
		e.replier.Reply(chatID, msgContactsFailed, nil)
		e.resetToMenu(chatID)
		return
	}

	if len(list) == 0 && page > 0 {
		e.resetToMenu(chatID)
		return
	}

	hasNext := len(list) > PageSize
	if hasNext {
		list = list[:PageSize]
	}

	e.replier.Reply(chatID, pageTitle(page), pageKeyboard(list, page, hasNext))
}

func (e *Engine) search(ctx context.Context, chatID int64, query string) {
	list, err := e.contacts.Search(ctx, query, PageSize)
	if err != nil {
		e.logger.Error("Failed to search contacts", zap.String("query", query), zap.Error(err))
		e.replier.Reply(chatID, msgContactsFailed, nil)
		e.resetToMenu(chatID)
		return
	}

	if len(list) == 0 {
		e.replier.Reply(chatID, noResults(query), nil)
		e.resetToMenu(chatID)
		return
	}

	e.replier.Reply(chatID, searchTitle(query), searchKeyboard(list))
}

func (e *Engine) sendSMS(ctx context.Context, chatID int64, eff SendSMS) {
	err := e.sms.SendSMS(ctx, eff.Number, eff.Body)
	switch {
	case errors.Is(err, device.ErrPermissionDenied):
		e.logger.Warn("SMS permission missing", zap.String("to", eff.Number))
		e.replier.Reply(chatID, msgPermissionDenied, nil)
	case err != nil:
		e.logger.Error("Failed to send SMS", zap.String("to", eff.Number), zap.Error(err))
		e.replier.Reply(chatID, smsFailed(err), nil)
	default:
		e.replier.Reply(chatID, smsSent(eff.Display), nil)
	}
}
