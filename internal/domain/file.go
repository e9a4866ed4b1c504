package domain

import "io"

// File загружаемый файл. Open может вызываться несколько раз.
type File struct {
	Name        string
	ContentType string
	Size        int64
	Open        func() (io.ReadCloser, error)
}
