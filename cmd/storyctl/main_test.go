package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"sightstory/internal/story"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestCompose_JSONMatchesComposer(t *testing.T) {
	out, err := execute(t, "", "compose", "--words=the,dog,park", "jump", "--name=mia", "--seed=7", "--format=json")
	require.NoError(t, err)

	var got story.Story
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	want := story.NewComposer(story.Default(), story.NewSeededRandomizer(7)).
		Compose([]string{"the", "dog", "park", "jump"}, "mia")
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("compose output mismatch (-want +got):\n%s", diff)
	}
}

func TestCompose_SeedIsReproducible(t *testing.T) {
	a, err := execute(t, "", "compose", "-w", "play,run", "--seed=11")
	require.NoError(t, err)
	b, err := execute(t, "", "compose", "-w", "play,run", "--seed=11")
	require.NoError(t, err)
	assert.Equal(t, a, b)
	assert.Contains(t, a, "Coverage: ")
	assert.Contains(t, a, "Scenes:   ")
}

func TestCompose_YAML(t *testing.T) {
	out, err := execute(t, "", "compose", "walk", "park", "--seed=3", "-o", "yaml")
	require.NoError(t, err)

	var got story.Story
	require.NoError(t, yaml.Unmarshal([]byte(out), &got))
	assert.Equal(t, []string{"walk", "park"}, got.UsedWords)
	assert.Equal(t, 100, got.CoveragePercent)
	assert.Equal(t, "Alex woke up and saw the sun.", got.Sentences[0])
}

func TestCompose_RejectsUnknownFormat(t *testing.T) {
	_, err := execute(t, "", "compose", "--format=xml")
	assert.ErrorContains(t, err, "unknown format")
}

func TestScenes(t *testing.T) {
	out, err := execute(t, "", "scenes", "--phase=10", "--format=json")
	require.NoError(t, err)
	var views []sceneView
	require.NoError(t, json.Unmarshal([]byte(out), &views))
	require.NotEmpty(t, views)
	for _, v := range views {
		assert.Equal(t, "bedtime", v.PhaseName)
	}

	out, err = execute(t, "", "scenes")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Len(t, lines, len(story.Default().Scenes())+1)
	assert.True(t, strings.HasPrefix(lines[0], "PHASE"))

	_, err = execute(t, "", "scenes", "--phase=0")
	assert.Error(t, err)
}

func TestNormalize(t *testing.T) {
	out, err := execute(t, "", "normalize", "a", "elephant", "is", "big")
	require.NoError(t, err)
	assert.Equal(t, "An elephant is big.\n", out)

	out, err = execute(t, "I is happy\ndog ran\n", "normalize", "--seed=1")
	require.NoError(t, err)
	assert.Equal(t, "I am happy.\nThe dog ran.\n", out)
}
