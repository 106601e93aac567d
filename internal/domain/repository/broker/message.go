package broker

// Message is a delivered event. Ack settles it; Nack puts it back on the
// stream for redelivery to any consumer of the group.
type Message interface {
	ID() string
	Body() string
	Ack() error
	Nack() error
}
