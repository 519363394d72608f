package paramfile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingLogger struct {
	debug, errors int
}

func (c *countingLogger) Errorf(string, ...interface{}) { c.errors++ }
func (c *countingLogger) Warnf(string, ...interface{})  {}
func (c *countingLogger) Infof(string, ...interface{})  {}
func (c *countingLogger) Debugf(string, ...interface{}) { c.debug++ }

func lambdaText(count int) string {
	var sb strings.Builder
	sb.WriteString("# lambda table\n")
	for i := 0; i < count; i++ {
		fmt.Fprintf(&sb, "%d.5", i)
		if i%10 == 9 {
			sb.WriteString(" # row end\n")
		} else {
			sb.WriteString(", ")
		}
	}
	return sb.String()
}

func TestParseLambda(t *testing.T) {
	log := &countingLogger{}
	tables, err := ParseLambda(strings.NewReader(lambdaText(2*LambdaSize)), "lambda.txt", log)
	require.NoError(t, err)

	assert.Equal(t, 0.5, tables.Lambda[0])
	assert.Equal(t, 69.5, tables.Lambda[LambdaSize-1])
	assert.Equal(t, 70.5, tables.Lambda2[0])
	assert.Equal(t, 139.5, tables.Lambda2[LambdaSize-1])
	assert.Equal(t, 2*LambdaSize, log.debug)
	assert.Zero(t, log.errors)
}

func TestParseLambdaIncomplete(t *testing.T) {
	log := &countingLogger{}
	_, err := ParseLambda(strings.NewReader(lambdaText(2*LambdaSize-1)), "lambda.txt", log)
	assert.ErrorIs(t, err, ErrLambdaIncomplete)
	assert.Equal(t, 1, log.errors)

	var re *ResourceError
	require.True(t, errors.As(err, &re))
	assert.Equal(t, "lambda.txt", re.Path)
}

func TestParseLambdaTooMany(t *testing.T) {
	_, err := ParseLambda(strings.NewReader(lambdaText(2*LambdaSize+1)), "lambda.txt", nil)
	assert.ErrorIs(t, err, ErrLambdaTooMany)
}

func TestParseLambdaSkipsWords(t *testing.T) {
	text := "qp nan inf\n" + lambdaText(2*LambdaSize)
	tables, err := ParseLambda(strings.NewReader(text), "lambda.txt", nil)
	require.NoError(t, err)
	assert.Equal(t, 0.5, tables.Lambda[0], "non-finite tokens do not take a slot")
}

func TestReadLambdaFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lambda.txt")
	require.NoError(t, os.WriteFile(path, []byte(lambdaText(2*LambdaSize)), 0644))

	tables, err := ReadLambdaFile(path, nil)
	require.NoError(t, err)
	assert.Equal(t, 1.5, tables.Lambda[1])

	log := &countingLogger{}
	_, err = ReadLambdaFile(filepath.Join(t.TempDir(), "nope.txt"), log)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Equal(t, 1, log.errors)
}
