// ABOUTME: Ingestion responses for files, URLs and memory exports
// ABOUTME: Ingestion is asynchronous; info carries the server's acknowledgement text

package models

type AllowedMimeTypesOutput struct {
	Allowed []string `json:"allowed"`
}

func (*AllowedMimeTypesOutput) RequiredFields() []string {
	return []string{"allowed"}
}

type UploadSingleFileResponse struct {
	Filename    string `json:"filename"`
	ContentType string `json:"content_type"`
	Info        string `json:"info"`
}

func (*UploadSingleFileResponse) RequiredFields() []string {
	return []string{"filename", "info"}
}

type UploadURLResponse struct {
	URL  string `json:"url"`
	Info string `json:"info"`
}

func (*UploadURLResponse) RequiredFields() []string {
	return []string{"url", "info"}
}
