package models

const (
	SequenceBox       = "box"
	SequenceItem      = "item"
	SequencePlacement = "placement"
)

// Sequence stores the next value of an id counter.
type Sequence struct {
	Name string `gorm:"primaryKey;type:varchar(64)"`
	Next uint64 `gorm:"not null"`
}
