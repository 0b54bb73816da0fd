package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// MassSlot identifies one position in the liturgical running order.
type MassSlot string

const (
	SlotEntrance    MassSlot = "entrance"
	SlotOffertory   MassSlot = "offertory"
	SlotCommunion   MassSlot = "communion"
	SlotAdoration   MassSlot = "adoration"
	SlotRecessional MassSlot = "recessional"

	// Extra slots are optional additions beyond the five base positions.
	// They are sparse: the UI only shows them when assigned.
	SlotExtra1 MassSlot = "extra1"
	SlotExtra2 MassSlot = "extra2"
	SlotExtra3 MassSlot = "extra3"
)

// BaseSlots lists the five canonical positions, in running order.
// These are always displayed even when unassigned.
var BaseSlots = []MassSlot{
	SlotEntrance,
	SlotOffertory,
	SlotCommunion,
	SlotAdoration,
	SlotRecessional,
}

// ExtraSlots lists the optional positions, in display order.
var ExtraSlots = []MassSlot{
	SlotExtra1,
	SlotExtra2,
	SlotExtra3,
}

// IsValid reports whether s is one of the defined slots.
func (s MassSlot) IsValid() bool {
	switch s {
	case SlotEntrance, SlotOffertory, SlotCommunion, SlotAdoration, SlotRecessional,
		SlotExtra1, SlotExtra2, SlotExtra3:
		return true
	}
	return false
}

// Preset is a saved assignment of songs to liturgical slots for one mass
// occasion.
type Preset struct {
	// ─────────────────────────────
	// Identity (immutable)
	// ─────────────────────────────

	// ID is the canonical unique identifier.
	// Generated at creation time, never changed afterwards.
	ID string `json:"id"`

	// ─────────────────────────────
	// User-editable metadata
	// ─────────────────────────────

	// Name is the human-readable label.
	Name string `json:"name"`

	// Date is a free-form date/comment field.
	Date string `json:"date,omitempty"`

	// Notes is a free-form annotation field.
	Notes string `json:"notes,omitempty"`

	// ─────────────────────────────
	// Slot assignments
	// ─────────────────────────────

	// Songs maps a slot to a song id in the catalog.
	// The mapping is sparse: unassigned slots are simply absent.
	Songs map[MassSlot]int `json:"songs"`
}

// Validate checks that the preset has an id and that every assigned slot is a
// known MassSlot. Song ids are not resolved against the catalog here.
func (p *Preset) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("preset has no id")
	}
	for slot := range p.Songs {
		if !slot.IsValid() {
			return fmt.Errorf("unknown slot %q", slot)
		}
	}
	return nil
}

// Clone returns a deep copy of the preset.
func (p *Preset) Clone() Preset {
	out := *p
	if p.Songs != nil {
		out.Songs = make(map[MassSlot]int, len(p.Songs))
		for slot, songID := range p.Songs {
			out.Songs[slot] = songID
		}
	}
	return out
}

// NewPresetID generates a collision-resistant preset id.
// Timestamp plus a random suffix, so ids sort roughly by creation time.
func NewPresetID() string {
	return fmt.Sprintf("%d-%s", time.Now().UnixMilli(), uuid.NewString()[:8])
}
