package uploads

import "streamdesk-backend/internal/shared/fault"

// Validation failures, checked in this order.
var (
	ErrMissingFile     = fault.NewInvalid("missing_file", "No file uploaded")
	ErrFileTooLarge    = fault.NewInvalid("file_too_large", "File size exceeds 5MB limit")
	ErrUnsupportedType = fault.NewInvalid("unsupported_type", "File type not supported")
)
