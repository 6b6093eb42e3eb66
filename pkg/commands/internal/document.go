// Package internal holds the load and save steps shared by the schematic
// commands.
package internal

import (
	"io"
	"io/fs"
	"os"

	"github.com/arthur-debert/schanno/pkg/errors"
	"github.com/arthur-debert/schanno/pkg/filesystem"
	"github.com/arthur-debert/schanno/pkg/logging"
	"github.com/arthur-debert/schanno/pkg/schematic"
)

// StdinPath is the path that selects standard input or output
const StdinPath = "-"

// Source says where a schematic comes from
type Source struct {
	// FS defaults to the OS filesystem
	FS filesystem.FS
	// Path is a file name, or "-" for Stdin
	Path  string
	Stdin io.Reader
}

// Filesystem returns FS, or the OS filesystem when unset
func (s Source) Filesystem() filesystem.FS {
	if s.FS == nil {
		return filesystem.NewOS()
	}
	return s.FS
}

// Load reads and parses the schematic. Documents read from standard input
// have no filename.
func Load(src Source) (*schematic.Document, error) {
	logger := logging.GetLogger("commands")

	if src.Path == "" {
		return nil, errors.New(errors.ErrInvalidInput, "no schematic file given")
	}

	var (
		data     []byte
		err      error
		filename string
	)
	if src.Path == StdinPath {
		in := src.Stdin
		if in == nil {
			in = os.Stdin
		}
		data, err = io.ReadAll(in)
	} else {
		filename = src.Path
		data, err = src.Filesystem().ReadFile(src.Path)
	}
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileRead, "failed to read %s", src.Path).
			WithDetail("path", src.Path)
	}

	logger.Debug().Str("path", src.Path).Int("bytes", len(data)).Msg("Read schematic")
	return schematic.Parse(filename, string(data))
}

// Destination says where a regenerated schematic goes
type Destination struct {
	// Output is a file name, or "-" or empty for Stdout
	Output string
	// InPlace overwrites the source file, ignoring Output
	InPlace bool
	DryRun  bool
	// Backup keeps the previous file as <target><BackupSuffix>
	Backup       bool
	BackupSuffix string
	// DefaultFilename names in-place output for documents read from stdin
	DefaultFilename string
	Stdout          io.Writer
}

// Written reports what Save did. Path is empty when the text went to
// standard output or nothing was written.
type Written struct {
	Path   string
	Backup string
}

// Save writes the document text to its destination. It writes nothing in
// dry-run mode.
func Save(fsys filesystem.FS, doc *schematic.Document, dst Destination) (Written, error) {
	logger := logging.GetLogger("commands")
	if fsys == nil {
		fsys = filesystem.NewOS()
	}

	text, err := doc.Generate()
	if err != nil {
		return Written{}, err
	}
	if dst.DryRun {
		logger.Debug().Msg("Dry run, not writing schematic")
		return Written{}, nil
	}

	target := dst.Output
	if dst.InPlace {
		target = doc.Filename()
		if target == "" {
			target = dst.DefaultFilename
		}
		if target == "" {
			target = doc.SuggestedFilename()
		}
	}

	if target == "" || target == StdinPath {
		out := dst.Stdout
		if out == nil {
			out = os.Stdout
		}
		if _, err := io.WriteString(out, text); err != nil {
			return Written{}, errors.Wrap(err, errors.ErrFileWrite, "failed to write schematic to stdout")
		}
		return Written{}, nil
	}

	written := Written{Path: target}
	perm := fs.FileMode(0644)
	if info, err := fsys.Stat(target); err == nil {
		perm = info.Mode().Perm()
		if dst.Backup {
			written.Backup = target + dst.BackupSuffix
			if err := fsys.Rename(target, written.Backup); err != nil {
				return Written{}, errors.Wrapf(err, errors.ErrFileWrite, "failed to back up %s", target).
					WithDetail("backup", written.Backup)
			}
		}
	}

	if err := fsys.WriteFile(target, []byte(text), perm); err != nil {
		return Written{}, errors.Wrapf(err, errors.ErrFileWrite, "failed to write %s", target).
			WithDetail("path", target)
	}

	logger.Info().Str("path", target).Str("backup", written.Backup).Msg("Schematic written")
	return written, nil
}
