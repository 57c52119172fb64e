package element

import "github.com/uskr/wdclient/internal/wdevent"

// FileUpload exposes a file-picker control bound to a server-side
// upload endpoint (spec.md §4.6).
type FileUpload struct {
	Base
}

// FileUploadData is FileUpload's typed lsdata shape.
type FileUploadData struct {
	UploadURL string
	Enabled   bool
}

// Data decodes this FileUpload's lsdata.
func (u *FileUpload) Data() (FileUploadData, error) {
	f, err := u.LSData()
	if err != nil {
		return FileUploadData{}, err
	}
	return FileUploadData{UploadURL: f.String("0"), Enabled: !f.Has("3") || f.Bool("3")}, nil
}

// FileDownload exposes a link to a server-generated downloadable
// resource (spec.md §4.6).
type FileDownload struct {
	Base
}

// FileDownloadData is FileDownload's typed lsdata shape.
type FileDownloadData struct {
	DownloadURL string
	FileName    string
}

// Data decodes this FileDownload's lsdata.
func (d *FileDownload) Data() (FileDownloadData, error) {
	f, err := d.LSData()
	if err != nil {
		return FileDownloadData{}, err
	}
	return FileDownloadData{DownloadURL: f.String("0"), FileName: f.String("1")}, nil
}

// Press fires the FileDownload's Press event, which the server answers
// with a delta-update carrying a one-shot download URL rather than the
// file bytes themselves; retrieving the file is an application-layer
// concern outside the core (spec.md §2 Non-goals).
func (d *FileDownload) Press() (wdevent.Event, error) {
	return d.FireEvent("Press", []wdevent.Param{d.idParam()})
}
