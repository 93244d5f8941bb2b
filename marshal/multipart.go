// ABOUTME: Multipart form bodies with plain fields and file parts
// ABOUTME: Every file is opened before encoding starts and closed on every exit path

package marshal

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/textproto"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/2389/cheshire-client/apierror"
)

// Multipart is a multipart/form-data body.
type Multipart struct {
	Fields []Field
	Files  []FilePart
}

// Field is a form value. Strings pass through, numbers and booleans are
// formatted with strconv, anything else is sent as JSON.
type Field struct {
	Name  string
	Value any
}

// FilePart is a file sent under Field. Exactly one of Path and Content is
// set: Path is opened by the marshaller, Content is read as is. Content
// implementing io.Closer is closed once the body is built or fails.
type FilePart struct {
	Field    string
	Filename string
	Path     string
	Content  io.Reader

	// ContentType defaults to the type registered for the filename extension.
	ContentType string
}

// openedPart pairs a part with its readable content.
type openedPart struct {
	FilePart
	r io.Reader
}

func (mp *Multipart) encode() (io.Reader, string, error) {
	parts, closeAll, err := mp.open()
	defer closeAll()
	if err != nil {
		return nil, "", err
	}

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	for _, f := range mp.Fields {
		value, err := formValue(f.Value)
		if err != nil {
			return nil, "", &apierror.EncodingError{Err: fmt.Errorf("field %q: %w", f.Name, err)}
		}
		if err := w.WriteField(f.Name, value); err != nil {
			return nil, "", &apierror.EncodingError{Err: err}
		}
	}

	for _, p := range parts {
		pw, err := w.CreatePart(partHeader(p.FilePart))
		if err != nil {
			return nil, "", &apierror.EncodingError{Err: err}
		}
		if _, err := io.Copy(pw, p.r); err != nil {
			return nil, "", &apierror.EncodingError{Err: fmt.Errorf("reading %s: %w", p.Filename, err)}
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", &apierror.EncodingError{Err: err}
	}
	return &buf, w.FormDataContentType(), nil
}

// open resolves every file part. The returned close func releases whatever
// was opened, including on error.
func (mp *Multipart) open() ([]openedPart, func(), error) {
	var closers []io.Closer
	closeAll := func() {
		for _, c := range closers {
			c.Close()
		}
	}

	// Caller-supplied closers are owned from the start so they are released
	// even when a later path fails to open.
	for _, f := range mp.Files {
		if c, ok := f.Content.(io.Closer); ok {
			closers = append(closers, c)
		}
	}

	parts := make([]openedPart, 0, len(mp.Files))
	for _, f := range mp.Files {
		if f.Filename == "" && f.Path != "" {
			f.Filename = filepath.Base(f.Path)
		}
		if f.Path != "" && f.Content != nil {
			return nil, closeAll, &apierror.EncodingError{Err: fmt.Errorf("file part %q sets both path and content", f.Field)}
		}
		if f.Path == "" {
			if f.Content == nil {
				return nil, closeAll, &apierror.EncodingError{Err: fmt.Errorf("file part %q has no path or content", f.Field)}
			}
			parts = append(parts, openedPart{FilePart: f, r: f.Content})
			continue
		}

		file, err := os.Open(f.Path)
		if err != nil {
			return nil, closeAll, fmt.Errorf("opening upload: %w", err)
		}
		closers = append(closers, file)
		parts = append(parts, openedPart{FilePart: f, r: file})
	}
	return parts, closeAll, nil
}

// closeContents closes caller-supplied contents of a body that will not be
// encoded.
func (mp *Multipart) closeContents() {
	for _, f := range mp.Files {
		if c, ok := f.Content.(io.Closer); ok {
			c.Close()
		}
	}
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func partHeader(f FilePart) textproto.MIMEHeader {
	contentType := f.ContentType
	if contentType == "" {
		contentType = mime.TypeByExtension(filepath.Ext(f.Filename))
	}
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`,
		quoteEscaper.Replace(f.Field), quoteEscaper.Replace(f.Filename)))
	h.Set("Content-Type", contentType)
	return h
}

func formValue(v any) (string, error) {
	switch x := v.(type) {
	case string:
		return x, nil
	case []byte:
		return string(x), nil
	case int:
		return strconv.Itoa(x), nil
	case int32:
		return strconv.FormatInt(int64(x), 10), nil
	case int64:
		return strconv.FormatInt(x, 10), nil
	case uint:
		return strconv.FormatUint(uint64(x), 10), nil
	case float32:
		return strconv.FormatFloat(float64(x), 'f', -1, 32), nil
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64), nil
	case bool:
		return strconv.FormatBool(x), nil
	case fmt.Stringer:
		return x.String(), nil
	default:
		data, err := json.Marshal(x)
		if err != nil {
			return "", err
		}
		return string(data), nil
	}
}
