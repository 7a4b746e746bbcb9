// Package pathutil locates Java and Android executables across platforms.
//
// It knows the executable naming rules of each operating system, can look a
// tool up on PATH, searches the common JDK installation directories when PATH
// has nothing, and returns installation hints for missing tools.
//
// All functions take the target operating system as a runtime.GOOS value so
// Windows behaviour can be exercised from any host.
//
// # Example: Finding javac
//
//	javac := pathutil.ToolPath(javaHome, runtime.GOOS, "javac")
//	if !fileutil.IsRegularFile(javac) {
//	    if onPath := pathutil.FindToolInPath(runtime.GOOS, "javac", env.OS()); onPath != "" {
//	        fmt.Println("javac on PATH:", onPath)
//	    } else {
//	        fmt.Println(pathutil.InstallSuggestion("javac"))
//	    }
//	}
package pathutil
