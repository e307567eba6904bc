package uploads

import (
	"strconv"
	"time"
)

const (
	// MaxUploadBytes is inclusive: a file of exactly this size is accepted.
	MaxUploadBytes = 5 << 20
	maxSizeLabel   = "5MB"
	urlPrefix      = "/uploads/"
)

var supportedTypes = []string{
	"image/jpeg",
	"image/png",
	"image/gif",
	"image/webp",
	"video/mp4",
	"audio/mpeg",
}

var allowedContentTypes = func() map[string]struct{} {
	m := make(map[string]struct{}, len(supportedTypes))
	for _, t := range supportedTypes {
		m[t] = struct{}{}
	}
	return m
}()

// SupportedTypes returns a copy of the MIME allow-set in display order.
func SupportedTypes() []string {
	return append([]string(nil), supportedTypes...)
}

// File is the part of an upload the policy looks at.
type File struct {
	Name string
	Type string
	Size int64
}

// Descriptor describes an accepted upload.
type Descriptor struct {
	FileURL  string `json:"fileUrl"`
	FileName string `json:"fileName"`
	FileSize int64  `json:"fileSize"`
	FileType string `json:"fileType"`
}

// Validator applies the size and type policy to uploads.
type Validator struct {
	Now func() time.Time
}

// NewValidator returns a Validator using the wall clock.
func NewValidator() *Validator {
	return &Validator{Now: time.Now}
}

// Validate checks presence, then size, then type, stopping at the first failure.
// The URL is illustrative only and may collide for same-millisecond uploads of one name.
func (v *Validator) Validate(file *File) (Descriptor, error) {
	if file == nil {
		return Descriptor{}, ErrMissingFile
	}
	if file.Size > MaxUploadBytes {
		return Descriptor{}, ErrFileTooLarge
	}
	if _, ok := allowedContentTypes[file.Type]; !ok {
		return Descriptor{}, ErrUnsupportedType
	}

	now := time.Now
	if v != nil && v.Now != nil {
		now = v.Now
	}
	stamp := now().UnixMilli()

	return Descriptor{
		FileURL:  urlPrefix + strconv.FormatInt(stamp, 10) + "-" + file.Name,
		FileName: file.Name,
		FileSize: file.Size,
		FileType: file.Type,
	}, nil
}
