package models

import "time"

// UploadPathPrefix is the root-relative prefix older rows stored in FileURL
// before references were switched to absolute URLs.
const UploadPathPrefix = "/uploads/"

// Document is a content attachment referenced by FileURL. Target state: the
// URL is fully qualified; rows written before the cutover may still hold a
// root-relative path and are rewritten by the URL normalizer sweep.
type Document struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	OwnerType  string    `gorm:"type:varchar(50);index:idx_documents_owner" json:"owner_type"`
	OwnerID    uint      `gorm:"index:idx_documents_owner" json:"owner_id"`
	Name       string    `gorm:"type:varchar(255)" json:"name"`
	FileURL    string    `gorm:"type:varchar(500);not null" json:"file_url"`
	MimeType   string    `gorm:"type:varchar(100)" json:"mime_type"`
	SizeBytes  int64     `json:"size_bytes"`
	UploadedAt time.Time `gorm:"type:timestamp" json:"uploaded_at"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// IsRelativeFileURL reports whether the stored reference still uses the old
// root-relative form.
func (d *Document) IsRelativeFileURL() bool {
	return len(d.FileURL) >= len(UploadPathPrefix) && d.FileURL[:len(UploadPathPrefix)] == UploadPathPrefix
}
