package dcmtree

import (
	"bytes"
	"io"
	"os"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const (
	preambleLength = 128
	magicLength    = 4
)

var dicmTestString = []byte("DICM")

// Parser decodes DICOM streams into a Handler.
type Parser struct {
	cfg Config
	log *zap.SugaredLogger
}

// NewParser returns a Parser using `cfg` and the package logger
func NewParser(cfg Config) *Parser {
	if cfg.MaxDepth < 1 {
		cfg.MaxDepth = DefaultMaxDepth
	}
	if cfg.OpenFileLimit < 1 {
		cfg.OpenFileLimit = DefaultOpenFileLimit
	}
	return &Parser{cfg: cfg, log: Logger()}
}

// WithLogger returns a copy of the parser logging to `l`
func (p *Parser) WithLogger(l *zap.SugaredLogger) *Parser {
	cp := *p
	cp.log = l
	return &cp
}

// Config returns the parser configuration
func (p *Parser) Config() Config {
	return p.cfg
}

// attemptReadPreamble positions the cursor after the preamble and "DICM" magic,
// or at offset 0 when the magic is absent. Returns whether the magic was found.
func attemptReadPreamble(c *Cursor) (bool, error) {
	if c.Len() >= preambleLength+magicLength {
		if err := c.Seek(preambleLength); err != nil {
			return false, err
		}
		magic, err := c.ReadBytes(magicLength)
		if err != nil {
			return false, err
		}
		if bytes.Equal(magic, dicmTestString) {
			return true, nil
		}
	}
	return false, c.Seek(0)
}

// Parse decodes the whole of `source`, from offset 0, into `h`.
func (p *Parser) Parse(source io.ReadSeeker, h Handler) error {
	if _, err := source.Seek(0, io.SeekStart); err != nil {
		return errors.Wrap(err, "Parse")
	}
	c, err := NewCursor(source)
	if err != nil {
		return err
	}
	defer c.Close()
	found, err := attemptReadPreamble(c)
	if err != nil {
		return corruptDicom(err, "reading preamble")
	}
	if !found {
		p.log.Debugw("no DICM magic; decoding from offset 0", "size", c.Len())
	}
	return p.Walk(c, DefaultTransferSyntax(), RootIndex, c.Len(), h)
}

// ParseBytes decodes `buf` into `h`
func (p *Parser) ParseBytes(buf []byte, h Handler) error {
	return p.Parse(bytes.NewReader(buf), h)
}

// ParseFile decodes the file at `path` into `h`
func (p *Parser) ParseFile(path string, h Handler) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.Wrapf(err, "failed to open %s", path)
	}
	defer f.Close()
	if err := p.Parse(f, h); err != nil {
		return errors.Wrapf(err, "%s", path)
	}
	return nil
}

// Parse decodes `source` into `h` using the environment configuration
func Parse(source io.ReadSeeker, h Handler) error {
	return NewParser(GetConfig()).Parse(source, h)
}

// ParseBytes decodes `buf` into `h` using the environment configuration
func ParseBytes(buf []byte, h Handler) error {
	return NewParser(GetConfig()).ParseBytes(buf, h)
}

// ParseFile decodes the file at `path` into `h` using the environment configuration
func ParseFile(path string, h Handler) error {
	return NewParser(GetConfig()).ParseFile(path, h)
}
