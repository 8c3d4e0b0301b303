package intake

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"lokgeet/internal/app/errs"
)

// IDFormat is the layout of upload identifiers: a UTC timestamp at second
// resolution. The id doubles as the upload filename prefix.
const IDFormat = "20060102T150405Z"

var recognizedExtensions = map[string]bool{
	".wav": true,
	".mp3": true,
	".m4a": true,
	".ogg": true,
}

// RecognizedExtension reports whether the filename carries one of the
// audio extensions the tool accepts.
func RecognizedExtension(filename string) bool {
	return recognizedExtensions[strings.ToLower(filepath.Ext(filename))]
}

// AudioIntake persists uploaded audio blobs under a managed directory.
type AudioIntake struct {
	uploadDir string
	now       func() time.Time
}

// NewAudioIntake creates an AudioIntake writing into uploadDir. The
// directory is created on the first save, not here.
func NewAudioIntake(uploadDir string) *AudioIntake {
	return &AudioIntake{
		uploadDir: uploadDir,
		now:       time.Now,
	}
}

// Save writes raw to <uploadDir>/<id><ext> where id is a fresh UTC
// timestamp token and ext comes from originalFilename. On success the
// file at savedPath contains exactly raw. Any filesystem failure aborts
// the submission; no partial state is reported as success.
func (a *AudioIntake) Save(raw []byte, originalFilename string) (savedPath, id string, err error) {
	if len(raw) == 0 {
		return "", "", errs.ErrEmptyAudio
	}
	if !RecognizedExtension(originalFilename) {
		return "", "", errs.Wrapf(errs.ErrUnsupportedFormat, "%q", originalFilename)
	}

	id = a.now().UTC().Format(IDFormat)
	ext := strings.ToLower(filepath.Ext(originalFilename))
	savedPath = filepath.Join(a.uploadDir, id+ext)

	if err := os.MkdirAll(a.uploadDir, 0o755); err != nil {
		return "", "", errs.Wrapf(err, "create upload directory %s", a.uploadDir)
	}
	if err := os.WriteFile(savedPath, raw, 0o644); err != nil {
		return "", "", errs.Wrapf(err, "write audio file %s", savedPath)
	}
	return savedPath, id, nil
}
