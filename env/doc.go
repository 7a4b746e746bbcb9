// Package env provides the environment snapshot used by every resolver in droidenv
// and the override chains built on top of it.
//
// Resolvers never call os.Getenv directly. They receive an Environment, which
// reads the live process environment at call time (OS) or a fixed set of values
// (FromMap, FromSlice) in tests and when an env-file is layered under the
// process environment.
//
// # Override Chains
//
// Several variables can name the same logical resource. The first variable that
// is set and non-empty wins and the rest are ignored, even if they are set:
//
//	value, name, ok := env.FirstValue(e, env.AndroidPlatform, env.AndroidAPILevel, env.AndroidSDKVersion)
//
// Path overrides additionally require the path to exist:
//
//	sdk, name, ok := env.FirstExistingPath(e, env.AndroidHome, env.AndroidSDKRoot)
//
// A variable explicitly set to the empty string behaves exactly like an unset
// variable.
//
// # Env Files
//
// LoadFile parses KEY=value files (comments and blank lines skipped, surrounding
// quotes removed) so that values can be layered beneath the process environment:
//
//	fileVars, err := env.LoadFile(".droidenv")
//	if err != nil {
//		return err
//	}
//	e := env.Layered(env.OS(), env.FromMap(fileVars))
//
// Environments that also implement Lister can be enumerated; WithPrefix uses
// that to collect related variables such as ANDROID_NDK_HOME.
package env
