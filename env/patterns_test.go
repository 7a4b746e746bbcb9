package env

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type lookupOnly struct{}

func (lookupOnly) Lookup(string) (string, bool) { return "x", true }

func TestFilterByPrefix(t *testing.T) {
	vars := map[string]string{
		"ANDROID_HOME":     "/sdk",
		"android_ndk_home": "/ndk",
		"JAVA_HOME":        "/jdk",
	}
	assert.Equal(t, map[string]string{"ANDROID_HOME": "/sdk", "android_ndk_home": "/ndk"}, FilterByPrefix(vars, "ANDROID_"))
	assert.Empty(t, FilterByPrefix(nil, "ANDROID_"))
	assert.NotNil(t, FilterByPrefix(nil, "ANDROID_"))
}

func TestWithPrefix(t *testing.T) {
	e := Layered(
		FromMap(map[string]string{"ANDROID_NDK_HOME": "", "JAVA_TOOL_OPTIONS": "-Xmx1g"}),
		FromMap(map[string]string{"ANDROID_NDK_HOME": "/ndk", "ANDROID_EMPTY": "", "PATH": "/bin"}),
	)

	got := WithPrefix(e, "ANDROID_", "JAVA_")
	assert.Equal(t, map[string]string{
		"ANDROID_NDK_HOME":  "/ndk",
		"JAVA_TOOL_OPTIONS": "-Xmx1g",
	}, got)
}

func TestWithPrefix_OS(t *testing.T) {
	t.Setenv("DROIDENV_PREFIX_TEST", "on")
	assert.Equal(t, "on", WithPrefix(OS(), "DROIDENV_PREFIX_")["DROIDENV_PREFIX_TEST"])
}

func TestWithPrefix_NotLister(t *testing.T) {
	assert.Empty(t, WithPrefix(lookupOnly{}, "ANDROID_"))
	assert.Empty(t, WithPrefix(nil, "ANDROID_"))
}
