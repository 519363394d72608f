package paramfile

import (
	"bufio"
	"errors"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/harrison/hevcparam/internal/param"
)

// LambdaSize is the number of entries in each lambda table, one per QP.
const LambdaSize = param.QPMaxMax + 1

var (
	ErrLambdaIncomplete = errors.New("lambda file is incomplete")
	ErrLambdaTooMany    = errors.New("lambda file contains too many values")
)

// LambdaTables holds the two rate-distortion multiplier tables indexed by
// QP: Lambda for SAD costs and Lambda2 for SSE costs.
type LambdaTables struct {
	Lambda  [LambdaSize]float64
	Lambda2 [LambdaSize]float64
}

// ReadLambdaFile reads exactly 2*LambdaSize numbers from path. Numbers are
// separated by spaces, commas or newlines; anything after '#' on a line is
// a comment. Tokens that are not finite numbers are skipped. Values are
// logged at debug level as they are read.
func ReadLambdaFile(path string, log param.Logger) (*LambdaTables, error) {
	f, err := os.Open(path)
	if err != nil {
		if log != nil {
			log.Errorf("unable to read lambda file <%s>", path)
		}
		return nil, &ResourceError{Path: path, Op: "open lambda file", Err: err}
	}
	defer f.Close()
	return ParseLambda(f, path, log)
}

// ParseLambda is ReadLambdaFile on an open reader.
func ParseLambda(r io.Reader, path string, log param.Logger) (*LambdaTables, error) {
	tables := &LambdaTables{}
	n := 0
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := sc.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		for _, tok := range strings.FieldsFunc(line, isLambdaSep) {
			v, err := strconv.ParseFloat(tok, 64)
			if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
				continue
			}
			if n == 2*LambdaSize {
				return nil, lambdaError(path, log, ErrLambdaTooMany)
			}
			if n < LambdaSize {
				tables.Lambda[n] = v
				debugf(log, "lambda [%d] = %f", n, v)
			} else {
				tables.Lambda2[n-LambdaSize] = v
				debugf(log, "lambda2[%d] = %f", n-LambdaSize, v)
			}
			n++
		}
	}
	if err := sc.Err(); err != nil {
		return nil, &ResourceError{Path: path, Op: "read lambda file", Err: err}
	}
	if n < 2*LambdaSize {
		return nil, lambdaError(path, log, ErrLambdaIncomplete)
	}
	return tables, nil
}

func isLambdaSep(r rune) bool {
	switch r {
	case ' ', ',', '\t', '\r', '\n':
		return true
	}
	return false
}

func lambdaError(path string, log param.Logger, err error) error {
	if log != nil {
		log.Errorf("%v", err)
	}
	return &ResourceError{Path: path, Op: "parse lambda file", Err: err}
}

func debugf(log param.Logger, format string, args ...interface{}) {
	if log != nil {
		log.Debugf(format, args...)
	}
}
