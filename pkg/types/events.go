package types

import "time"

type BootcampCreated struct {
	BootcampID string    `json:"bootcampID"`
	Name       string    `json:"name"`
	Timestamp  time.Time `json:"timestamp"`
}

func (b *BootcampCreated) ContentType() string {
	return "application/json"
}

func (b *BootcampCreated) EntityID() string {
	return b.BootcampID
}

func (b *BootcampCreated) TopicName() string {
	return "bootcamp.created"
}

type BootcampUpdated struct {
	BootcampID string    `json:"bootcampID"`
	Name       string    `json:"name,omitempty"`
	Timestamp  time.Time `json:"timestamp"`
}

func (b *BootcampUpdated) ContentType() string {
	return "application/json"
}

func (b *BootcampUpdated) EntityID() string {
	return b.BootcampID
}

func (b *BootcampUpdated) TopicName() string {
	return "bootcamp.updated"
}

type BootcampDeleted struct {
	BootcampID string    `json:"bootcampID"`
	Timestamp  time.Time `json:"timestamp"`
}

func (b *BootcampDeleted) ContentType() string {
	return "application/json"
}

func (b *BootcampDeleted) EntityID() string {
	return b.BootcampID
}

func (b *BootcampDeleted) TopicName() string {
	return "bootcamp.deleted"
}
