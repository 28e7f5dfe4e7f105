package configx

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMerge_LaterSourcesWin(t *testing.T) {
	snapshot, err := Merge(context.Background(),
		MapSource{"LANGUAGE": "java", "ROOT": "."},
		MapSource{"LANGUAGE": "kotlin"},
	)
	require.NoError(t, err)
	assert.Equal(t, "kotlin", snapshot["LANGUAGE"])
	assert.Equal(t, ".", snapshot["ROOT"])
}

type failingSource struct{}

func (failingSource) Load(ctx context.Context) (map[string]string, error) {
	return nil, errors.New("boom")
}

func TestMerge_SourceError(t *testing.T) {
	_, err := Merge(context.Background(), MapSource{}, failingSource{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load source 1")
}

func TestBind(t *testing.T) {
	var cfg struct {
		Language string   `env:"LANGUAGE" default:"java"`
		Classes  []string `env:"CLASSES"`
	}
	require.NoError(t, Bind(map[string]string{"CLASSES": "Gui,Cli"}, &cfg))
	assert.Equal(t, "java", cfg.Language)
	assert.Equal(t, []string{"Gui", "Cli"}, cfg.Classes)
}

func TestValidator_CustomRule(t *testing.T) {
	type Config struct {
		Name  string   `yaml:"name" validate:"upper"`
		Names []string `yaml:"names" validate:"dive,upper"`
	}

	v := NewValidator(
		WithRule("upper", func(s string) bool { return s != "" && strings.ToUpper(s) == s }),
		WithTagNameFrom("yaml"),
	)

	require.NoError(t, ValidateStruct(v, &Config{Name: "OK", Names: []string{"A", "B"}}))

	err := ValidateStruct(v, &Config{Name: "OK", Names: []string{"A", "b"}})
	require.Error(t, err)

	var verrs validator.ValidationErrors
	require.True(t, errors.As(err, &verrs))
	require.Len(t, verrs, 1)
	assert.Equal(t, "names[1]", verrs[0].Field())
	assert.Equal(t, "upper", verrs[0].Tag())
}

func TestValidateStruct_DefaultValidator(t *testing.T) {
	type Config struct {
		Language string `validate:"required"`
	}
	assert.Error(t, ValidateStruct(nil, &Config{}))
	assert.NoError(t, ValidateStruct(nil, &Config{Language: "java"}))
}
