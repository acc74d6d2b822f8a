package service

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFromPastedTextWrapsVerbatim(t *testing.T) {
	gen := NewJDGenerator()

	jd, err := gen.FromPastedText("We need a senior engineer with Go experience.")
	require.NoError(t, err)
	require.Equal(t, "We need a senior engineer with Go experience.", jd.Purpose)
	require.Equal(t, []string{"As described in the job description"}, jd.Education)
	require.Equal(t, []string{"As described in the job description"}, jd.Experience)
	require.Equal(t, []string{"As described in the job description"}, jd.Responsibilities)
	require.Equal(t, []string{"See full JD for details"}, jd.Skills)
}

func TestFromPastedTextRejectsBlankInput(t *testing.T) {
	gen := NewJDGenerator()

	_, err := gen.FromPastedText("   \n\t ")
	require.ErrorIs(t, err, ErrEmptyInput)
}

func TestFromPastedTextStripsMarkup(t *testing.T) {
	gen := NewJDGenerator()

	jd, err := gen.FromPastedText(`<script>alert(1)</script>Build <b>reliable</b> services.`)
	require.NoError(t, err)
	require.Equal(t, "Build reliable services.", jd.Purpose)
}

func TestFromTitleIsDeterministic(t *testing.T) {
	gen := NewJDGenerator()

	first, err := gen.FromTitle("Data Scientist")
	require.NoError(t, err)
	second, err := gen.FromTitle("Data Scientist")
	require.NoError(t, err)

	require.Equal(t, first, second)
	require.Contains(t, first.Purpose, "Data Scientist")
	require.Len(t, first.Education, 2)
	require.Len(t, first.Experience, 2)
	require.Len(t, first.Responsibilities, 4)
	require.Len(t, first.Skills, 4)
}

func TestFromTitleRejectsBlankTitle(t *testing.T) {
	gen := NewJDGenerator()

	_, err := gen.FromTitle("  ")
	require.ErrorIs(t, err, ErrEmptyInput)
}
