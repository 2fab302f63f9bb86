// Package dict 读取行政区划字典文件
//
// 文件格式: 第一行为表头 adcode,name,longitude,latitude, 其余每行一条记录, 如
//
//	500233000000,忠县,108.039002,30.299559
//	410506000000,龙安区,114.301331,36.076225
package dict

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/transform"

	"github.com/miajio/cpca/pkg/region"
)

const Header = "adcode,name,longitude,latitude"

var ErrMalformedLine = errors.New("dict: malformed line")

type options struct {
	encoding string
}

// Option 读取选项
type Option func(*options)

// WithEncoding 文件编码, 支持 utf-8 (默认) 与 gbk
func WithEncoding(encoding string) Option {
	return func(o *options) { o.encoding = strings.ToLower(encoding) }
}

// LoadFile 从文件读取字典
func LoadFile(path string, opts ...Option) ([]region.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dict: %w", err)
	}
	defer f.Close()
	return Read(f, opts...)
}

// Read 读取字典, 任一行格式有误即返回错误
func Read(r io.Reader, opts ...Option) ([]region.Record, error) {
	o := options{encoding: "utf-8"}
	for _, opt := range opts {
		opt(&o)
	}
	switch o.encoding {
	case "", "utf-8", "utf8":
	case "gbk", "gb18030":
		r = transform.NewReader(r, simplifiedchinese.GB18030.NewDecoder())
	default:
		return nil, fmt.Errorf("dict: unsupported encoding %q", o.encoding)
	}

	var records []region.Record
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		if lineNo == 1 {
			// 第一行表头跳过
			continue
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		rec, err := parseLine(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		records = append(records, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read dict: %w", err)
	}
	return records, nil
}

func parseLine(line string) (region.Record, error) {
	fields := strings.Split(line, ",")
	if len(fields) < 2 {
		return region.Record{}, fmt.Errorf("%w: %q", ErrMalformedLine, line)
	}
	rec := region.Record{
		Code: strings.TrimSpace(fields[0]),
		Name: strings.TrimSpace(fields[1]),
	}
	if rec.Code == "" || rec.Name == "" {
		return region.Record{}, fmt.Errorf("%w: %q", ErrMalformedLine, line)
	}
	var err error
	if len(fields) > 2 && fields[2] != "" {
		if rec.Longitude, err = strconv.ParseFloat(fields[2], 64); err != nil {
			return region.Record{}, fmt.Errorf("%w: longitude %q", ErrMalformedLine, fields[2])
		}
	}
	if len(fields) > 3 && fields[3] != "" {
		if rec.Latitude, err = strconv.ParseFloat(fields[3], 64); err != nil {
			return region.Record{}, fmt.Errorf("%w: latitude %q", ErrMalformedLine, fields[3])
		}
	}
	return rec, nil
}

// Write 按字典格式输出
func Write(w io.Writer, records []region.Record) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintln(bw, Header); err != nil {
		return err
	}
	for _, rec := range records {
		if _, err := fmt.Fprintf(bw, "%s,%s,%s,%s\n", rec.Code, rec.Name,
			strconv.FormatFloat(rec.Longitude, 'f', -1, 64),
			strconv.FormatFloat(rec.Latitude, 'f', -1, 64)); err != nil {
			return err
		}
	}
	return bw.Flush()
}
