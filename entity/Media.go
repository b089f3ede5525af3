package entity

import (
	"gorm.io/gorm"
)

// Media is immutable once created: no update path exists, only
// create/read/cascade-delete via the record referencing it.
type Media struct {
	gorm.Model

	Data     []byte `gorm:"type:blob" json:"-"` // blob body, never serialized
	MimeType string `json:"mimeType"`           // e.g. "image/png"
	Size     int64  `json:"size"`               // bytes
}
