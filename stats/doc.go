// Package stats provides correlation analysis, significance filtering,
// and simple linear regression over table fields.
//
// The stats layer provides:
//
//   - Corr: Pearson sample correlation (n−1 divisor throughout).
//   - CorrMatrix / FilteredCorrMatrix: square field-by-field matrices;
//     the filtered variant replaces entries that fail a Fisher-z
//     significance test with the NotSignificant sentinel.
//   - CorrTestSig: the Fisher z-transform significance test itself.
//   - LinearReg / LinearRegPoints / LinearRegErrs: least-squares fit of
//     y = slope*x + intercept and its squared residuals. The
//     minimization is delegated to a QR solve of the two-column design
//     matrix (gonum/mat).
//   - NormalityTest / TTest: sample(s) → p-value hypothesis tests
//     (Jarque–Bera, Welch's t), built on gonum's distributions.
//
// Diagonal entries of correlation matrices are computed through the
// same code path as off-diagonal ones, not short-circuited to 1, and
// the filtered variant never filters the diagonal.
//
// Errors:
//
//	ErrInsufficientSample - fewer samples than the statistic requires.
//	ErrLengthMismatch     - paired samples of different lengths.
package stats
