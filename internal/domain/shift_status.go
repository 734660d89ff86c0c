package domain

import "time"

type ShiftStatus struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	Version   int32     `json:"-"`
}
