package eventhandler

import (
	tea "github.com/charmbracelet/bubbletea"
)

type convertFunc[E any, M any] func(E) M

type subscription[E any, M any] struct {
	// Pointer-shared between model copies so that a closed channel can
	// be nullified for everyone at once.
	ch      chan E
	convert convertFunc[E, M]
}

// Model adapts an event channel to the bubbletea message loop: every
// event of type E received on the channel is converted to a message of
// type M and delivered to the program.
type Model[E any, M any] struct {
	subscription *subscription[E, M]
}

func New[E any, M any](convert convertFunc[E, M]) Model[E, M] {
	return Model[E, M]{
		subscription: &subscription[E, M]{
			ch:      nil,
			convert: convert,
		},
	}
}

func (m Model[E, M]) Init(input chan E) tea.Cmd {
	m.subscription.ch = input
	return waitForEvent[E, M](m.subscription)
}

// InitWithCurrent additionally force-feeds the current value, so the
// program observes the state as of subscription time.
func (m Model[E, M]) InitWithCurrent(input chan E, current E) tea.Cmd {
	m.subscription.ch = input
	m.subscription.ch <- current
	return waitForEvent[E, M](m.subscription)
}

func (m Model[E, M]) Update(msg tea.Msg) (Model[E, M], tea.Cmd) {
	if m.subscription == nil || m.subscription.ch == nil {
		return m, nil
	}
	var cmd tea.Cmd
	switch msg.(type) {
	case M:
		cmd = waitForEvent[E, M](m.subscription)
	}
	return m, cmd
}

func waitForEvent[E any, M any](subscription *subscription[E, M]) tea.Cmd {
	return func() tea.Msg {
		if subscription.ch == nil {
			return nil
		}
		event, more := <-subscription.ch
		if more {
			return subscription.convert(event)
		}
		subscription.ch = nil
		return nil
	}
}
