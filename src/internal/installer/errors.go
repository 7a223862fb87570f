package installer

// Process exit codes for fatal installation failures. Values are stable so
// callers can distinguish failure modes programmatically.
const (
	CodeGeneric        = 1  // unclassified failure
	CodeNoMethod       = 2  // neither git nor a download tool is available
	CodeGitMissing     = 3  // git method forced but git is not installed
	CodeUpdateFailed   = 4  // git fetch on an existing install failed
	CodeCloneFailed    = 5  // git clone failed
	CodeCheckoutFailed = 6  // git checkout of the pinned tag failed
	CodeNoDownloader   = 7  // no download tool available for the script method
	CodeScriptDownload = 8  // main nvm.sh download failed
	CodeHelperDownload = 9  // nvm-exec helper download failed
	CodeChmodFailed    = 10 // marking the helper executable failed
)

// ExitError is a fatal installation failure carrying its process exit code
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

func exitErr(code int, err error) *ExitError {
	return &ExitError{Code: code, Err: err}
}
