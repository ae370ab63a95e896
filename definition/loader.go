package definition

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"path"
	"strings"

	"github.com/tidwall/gjson"
	"gopkg.in/yaml.v3"
)

const s3Scheme = "s3"

var ErrMalformed = errors.New("malformed flow definition")

type ObjectReader interface {
	GetFile(ctx context.Context, bucket, key string) ([]byte, error)
}

type Loader struct {
	objects ObjectReader
}

func NewLoader(objects ObjectReader) *Loader {
	return &Loader{objects: objects}
}

// Load reads the definition document from a local path or an s3://bucket/key
// uri and returns it as JSON. The source is never written back.
func (l *Loader) Load(ctx context.Context, source string) ([]byte, error) {
	content, err := l.read(ctx, source)
	if err != nil {
		return nil, err
	}
	if isYAML(source) {
		content, err = yamlToJSON(content)
		if err != nil {
			return nil, fmt.Errorf("%w %s: %w", ErrMalformed, source, err)
		}
	}
	if !gjson.ValidBytes(content) {
		return nil, fmt.Errorf("%w %s: invalid json", ErrMalformed, source)
	}
	if !gjson.GetBytes(content, "definition.nodes").IsArray() {
		return nil, fmt.Errorf("%w %s: definition.nodes must be an array", ErrMalformed, source)
	}
	slog.Debug(fmt.Sprintf("Loaded flow definition %s, %d bytes", source, len(content)))
	return content, nil
}

func (l *Loader) read(ctx context.Context, source string) ([]byte, error) {
	if !strings.HasPrefix(source, s3Scheme+"://") {
		return os.ReadFile(source)
	}
	if l.objects == nil {
		return nil, fmt.Errorf("no object storage configured for %s", source)
	}
	location, err := url.Parse(source)
	if err != nil {
		return nil, fmt.Errorf("invalid definition uri %s: %w", source, err)
	}
	key := strings.TrimPrefix(location.Path, "/")
	if location.Host == "" || key == "" {
		return nil, fmt.Errorf("definition uri %s must be in form s3://bucket/key", source)
	}
	return l.objects.GetFile(ctx, location.Host, key)
}

func isYAML(source string) bool {
	ext := strings.ToLower(path.Ext(source))
	return ext == ".yaml" || ext == ".yml"
}

func yamlToJSON(content []byte) ([]byte, error) {
	var document any
	if err := yaml.Unmarshal(content, &document); err != nil {
		return nil, err
	}
	return json.Marshal(document)
}
