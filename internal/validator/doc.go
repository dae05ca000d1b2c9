// Package validator checks an archive for problems and reports them.
//
// A check collects [Issue] values of three severities into a [Result]:
// errors make the archive unusable, warnings flag suspicious but loadable
// configs, and info issues are notes such as a system with no games.
//
// # Basic Usage
//
//	result := validator.Check(archiveFs, root)
//	if err := validator.NewReporter(os.Stdout, validator.FormatText).Report(result); err != nil {
//		return err
//	}
//	if result.HasErrors() {
//		return result.Err
//	}
package validator
