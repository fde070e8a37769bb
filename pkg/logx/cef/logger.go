package cef

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"strconv"

	"github.com/campusfm/projectperm/pkg/contextx"
	"github.com/campusfm/projectperm/pkg/logx"
	"github.com/xoebus/ceflog"
	"google.golang.org/grpc/peer"
)

const (
	CEFTimeFormat = "Jan 2 2006 15:04:05"

	maxCustomExtensions = 6

	invalidCEFCustomExtension = "invalid-cef-custom-extension"
)

var (
	errEmptyExtension     = errors.New("the extension key and/or value is empty")
	errTooManyExtensions  = fmt.Errorf("cannot provide more than %d custom extensions", maxCustomExtensions)
	reservedExtensionKeys = map[string]bool{"msg": true}
)

type Vendor string
type Product string
type Version string
type Hostname string

// Logger writes audit events as CEF lines. Source address and port come
// from the gRPC peer in the context.
type Logger struct {
	logger    *ceflog.Logger
	hostname  string
	destPort  int
	errLogger logx.Logger
}

func NewLogger(writer io.Writer, vendor Vendor, product Product, version Version, hostname Hostname, destPort int, errLogger logx.Logger) *Logger {
	return &Logger{
		logger:    ceflog.New(writer, string(vendor), string(product), string(version)),
		hostname:  string(hostname),
		destPort:  destPort,
		errLogger: errLogger,
	}
}

func (l *Logger) Log(ctx context.Context, signature string, name string, args ...logx.SecurityData) {
	var (
		srcAddr net.IP
		srcPort int
	)

	if p, ok := peer.FromContext(ctx); ok {
		if addr, ok := p.Addr.(*net.TCPAddr); ok {
			srcAddr = addr.IP
			srcPort = addr.Port
		}
	}

	extension := ceflog.Extension{
		{Key: "dst", Value: l.hostname},
		{Key: "src", Value: srcAddr.String()},
		{Key: "dpt", Value: strconv.Itoa(l.destPort)},
		{Key: "spt", Value: strconv.Itoa(srcPort)},
	}

	if rt, ok := contextx.ReceiptTimeFromContext(ctx); ok {
		extension = append(extension, ceflog.Pair{Key: "rt", Value: fmt.Sprintf("%q", rt.Format(CEFTimeFormat))})
	}

	if subject, ok := contextx.SubjectFromContext(ctx); ok {
		extension = append(extension, ceflog.Pair{Key: "suser", Value: subject})
	}

	custom := 0
	reportedInvalid := false

	for _, arg := range args {
		if arg.Key == "" || arg.Value == "" {
			if !reportedInvalid {
				l.errLogger.Error(invalidCEFCustomExtension, errEmptyExtension)
				reportedInvalid = true
			}
			continue
		}

		if reservedExtensionKeys[arg.Key] {
			extension = append(extension, ceflog.Pair{Key: arg.Key, Value: arg.Value})
			continue
		}

		if custom == maxCustomExtensions {
			l.errLogger.Error(invalidCEFCustomExtension, errTooManyExtensions)
			break
		}

		custom++
		extension = append(extension,
			ceflog.Pair{Key: fmt.Sprintf("cs%dLabel", custom), Value: arg.Key},
			ceflog.Pair{Key: fmt.Sprintf("cs%d", custom), Value: arg.Value},
		)
	}

	l.logger.LogEvent(signature, name, 0, extension)
}
