package mdx

import (
	"fmt"
	"io"

	"github.com/gomdict/mdxwriter/charset"
	"github.com/gomdict/mdxwriter/cipher"
	"github.com/gomdict/mdxwriter/errs"
	"github.com/gomdict/mdxwriter/format"
	"github.com/gomdict/mdxwriter/internal/options"
)

const defaultBlockSize = 65536

// writerConfig holds every construction-time setting, applied in order by
// the WriterOption values passed to NewWriter before the offset table is
// built.
type writerConfig struct {
	title       string
	description string
	charset     charset.Charset
	blockSize   int
	compType    format.CompressionType
	version     format.Version
	encryptKey  []byte
	userEmail   []byte
	encryptIdx  bool
}

func defaultConfig() *writerConfig {
	return &writerConfig{
		charset:   charset.UTF8,
		blockSize: defaultBlockSize,
		compType:  format.CompressionZlib,
		version:   format.Version20,
	}
}

// WriterOption configures a Writer at construction time.
type WriterOption = options.Option[*writerConfig]

// WithBlockSize overrides the target decompressed size, in bytes, of each
// key and record block. Default is 65536.
func WithBlockSize(n int) WriterOption {
	return options.New(func(c *writerConfig) error {
		if n <= 0 {
			return fmt.Errorf("%w: block size must be positive", errs.ErrParameter)
		}
		c.blockSize = n

		return nil
	})
}

// WithEncoding sets the declared text encoding: "utf8"/"utf-8" (default),
// "utf16"/"utf-16", "gbk", or "big5", case-insensitive.
func WithEncoding(name string) WriterOption {
	return options.New(func(c *writerConfig) error {
		cs, err := charset.Parse(name)
		if err != nil {
			return err
		}
		c.charset = cs

		return nil
	})
}

// WithCompressionType sets the block compression backend. Default is
// format.CompressionZlib.
func WithCompressionType(t format.CompressionType) WriterOption {
	return options.New(func(c *writerConfig) error {
		if !t.Valid() {
			return fmt.Errorf("%w: compression type %d", errs.ErrUnknownCompression, t)
		}
		c.compType = t

		return nil
	})
}

// WithVersion sets the container format version, "1.2" or "2.0" (default).
func WithVersion(s string) WriterOption {
	return options.New(func(c *writerConfig) error {
		v, ok := format.ParseVersion(s)
		if !ok {
			return fmt.Errorf("%w: version %q", errs.ErrParameter, s)
		}
		c.version = v

		return nil
	})
}

// WithEncryptIndex enables the "disallow export" key-block-index
// encryption mode. Only valid under version "2.0"; combined with version
// "1.2" it fails NewWriter with errs.ErrParameter.
func WithEncryptIndex(enabled bool) WriterOption {
	return options.NoError(func(c *writerConfig) {
		c.encryptIdx = enabled
	})
}

// WithEncryptKey enables dictionary (section-preamble) encryption under
// the given key and, together with WithUserEmail, causes the header's
// RegCode attribute to be populated.
func WithEncryptKey(key []byte) WriterOption {
	return options.NoError(func(c *writerConfig) {
		c.encryptKey = key
	})
}

// WithUserEmail sets the registrant email used to derive RegCode when
// WithEncryptKey is also set.
func WithUserEmail(email []byte) WriterOption {
	return options.NoError(func(c *writerConfig) {
		c.userEmail = email
	})
}

// Writer assembles one MDX file from a fully materialized headword →
// explanation mapping. All work happens during NewWriter; Write is a
// one-shot consumer of the precomputed sections.
type Writer struct {
	header []byte

	keyPreamble   []byte
	keyIndexBytes []byte
	keyBlocks     []KeyBlock

	recordPreamble   []byte
	recordIndexBytes []byte
	recordBlocks     []RecordBlock

	written bool
}

// NewWriter validates opts, builds the offset table, partitions it into
// key and record blocks, builds both indices, and renders the header —
// everything but the final byte-for-byte Write.
func NewWriter(entries map[string]string, title, description string, opts ...WriterOption) (*Writer, error) {
	cfg := defaultConfig()
	cfg.title = title
	cfg.description = description

	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	if cfg.encryptIdx && cfg.version == format.Version12 {
		return nil, fmt.Errorf("%w: encrypt_index requires version 2.0", errs.ErrParameter)
	}

	table, err := buildOffsetTable(entries, cfg.charset)
	if err != nil {
		return nil, err
	}

	keyGroups := partition(table, cfg.blockSize, keyBlockEntrySize)
	recordGroups := partition(table, cfg.blockSize, recordBlockEntrySize)

	keyBlocks, err := buildKeyBlocks(keyGroups, cfg.version, cfg.compType)
	if err != nil {
		return nil, err
	}

	recordBlocks, err := buildRecordBlocks(recordGroups, cfg.compType)
	if err != nil {
		return nil, err
	}

	keyIndexBytes, keyIndexDecompSize, err := buildKeyBlockIndex(keyBlocks, cfg.version, cfg.compType, cfg.encryptIdx, cipher.MdxEncrypt)
	if err != nil {
		return nil, err
	}

	recordIndexBytes := buildRecordBlockIndex(recordBlocks, cfg.version)

	var keyBlocksTotal, recordBlocksTotal uint64
	for _, b := range keyBlocks {
		keyBlocksTotal += uint64(len(b.CompData))
	}
	for _, b := range recordBlocks {
		recordBlocksTotal += uint64(len(b.CompData))
	}

	var dictKey []byte
	if len(cfg.encryptKey) > 0 {
		dictKey = cfg.encryptKey
	}

	keyPreamble := buildKeyPreamble(keyPreambleValues{
		NumKeyBlocks:           uint64(len(keyBlocks)),
		NumEntries:             uint64(len(table)),
		KeyIndexDecompSize:     uint64(keyIndexDecompSize),
		KeyIndexCompSize:       uint64(len(keyIndexBytes)),
		KeyBlocksTotalCompSize: keyBlocksTotal,
	}, cfg.version, dictKey)

	recordPreamble := buildRecordPreamble(recordPreambleValues{
		NumRecordBlocks:           uint64(len(recordBlocks)),
		NumEntries:                uint64(len(table)),
		RecordIndexSize:           uint64(len(recordIndexBytes)),
		RecordBlocksTotalCompSize: recordBlocksTotal,
	}, cfg.version)

	var encrypted int
	if len(cfg.encryptKey) > 0 {
		encrypted |= 1
	}
	if cfg.encryptIdx {
		encrypted |= 2
	}

	var regCode string
	if len(cfg.encryptKey) > 0 && len(cfg.userEmail) > 0 {
		regCode = cipher.EncryptKey(cfg.encryptKey, cfg.userEmail)
	}

	header := buildHeader(headerParams{
		Version:     cfg.version.String(),
		Encrypted:   encrypted,
		Encoding:    encodingAttr(cfg.charset),
		Description: cfg.description,
		Title:       cfg.title,
		RegCode:     regCode,
	})

	return &Writer{
		header:           header,
		keyPreamble:      keyPreamble,
		keyIndexBytes:    keyIndexBytes,
		keyBlocks:        keyBlocks,
		recordPreamble:   recordPreamble,
		recordIndexBytes: recordIndexBytes,
		recordBlocks:     recordBlocks,
	}, nil
}

// Write emits the complete MDX file to w: header, then the key section
// (preamble, key-block index, key blocks), then the record section
// (preamble, record-block index, record blocks). It may be called at most
// once per Writer.
func (w *Writer) Write(out io.Writer) error {
	if w.written {
		return errs.ErrAlreadyWritten
	}
	w.written = true

	for _, chunk := range w.chunks() {
		if _, err := out.Write(chunk); err != nil {
			return err
		}
	}

	return nil
}

func (w *Writer) chunks() [][]byte {
	chunks := make([][]byte, 0, 4+len(w.keyBlocks)+len(w.recordBlocks))

	chunks = append(chunks, w.header, w.keyPreamble, w.keyIndexBytes)
	for _, b := range w.keyBlocks {
		chunks = append(chunks, b.CompData)
	}

	chunks = append(chunks, w.recordPreamble, w.recordIndexBytes)
	for _, b := range w.recordBlocks {
		chunks = append(chunks, b.CompData)
	}

	return chunks
}
