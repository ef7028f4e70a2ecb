package transport

//go:generate mockgen -source=service.go -destination=mock/service.go

// Service owns the single connection to the game server. There is no
// reconnection: once the connection is lost, Status reports offline and
// subscriber channels are closed. Resilience is the caller's business.
type Service interface {
	Initialize() error
	Send(payload []byte) error

	SubscribeToMessages() *MessagesSubscription
	Status() ConnectionStatus
	SubscribeToConnectionStatus() ConnectionStatusSubscription

	Stop()
}

type MessagesSubscription struct {
	Ch          chan []byte
	Unsubscribe func()
}

type ConnectionStatus struct {
	IsOnline bool
}

type ConnectionStatusSubscription chan ConnectionStatus
