package events

// TypePlayerDeleted is the event type published once per removed player
// account.
const TypePlayerDeleted = "player.deleted"

// PlayerDeleted announces that a player account delete has been acknowledged
// by the store. The character collection purges the account's characters on
// receipt.
type PlayerDeleted struct {
	PlayerID string
}

// EventType implements Event.
func (PlayerDeleted) EventType() string { return TypePlayerDeleted }
