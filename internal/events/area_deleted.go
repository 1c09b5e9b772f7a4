package events

// TypeAreaDeleted is the event type published once per removed area.
const TypeAreaDeleted = "area.deleted"

// AreaDeleted announces that an area delete has been acknowledged by the
// store. Subscribers purge their own records carrying the area's ID;
// receiving the event twice is harmless because a purge of zero remaining
// rows is a no-op.
type AreaDeleted struct {
	AreaID string
}

// EventType implements Event.
func (AreaDeleted) EventType() string { return TypeAreaDeleted }
