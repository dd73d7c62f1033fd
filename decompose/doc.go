// Package decompose splits a series into detrended, seasonal and residual
// components.
//
// The trend is a simple moving average whose window is a fixed fraction of
// the series length (0.2 by default). Because the moving average is shorter
// than its input by window-1 samples, every component returned here is
// aligned to the leading edge of the input: Detrended[i] is
// input[i] - Trend[i] for i < len(Trend).
//
// The period is either supplied explicitly or estimated with
// [EstimatePeriod], a DC-bin heuristic kept for compatibility with existing
// callers. It is not dominant-frequency detection; pass [Explicit] when the
// period is known.
package decompose
