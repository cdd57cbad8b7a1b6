// Package dispersion computes daily mark-to-market performance analytics
// for a long/short options-and-hedge trading book, driven by a
// time-ordered position log.
//
// The core functionalities include:
//   - Signed Exposure: converting raw position records into a signed
//     representation (long = +1, short = -1) so that quantities, greeks
//     and market values sum directly into net exposures.
//   - Daily PnL: per-ticker mark-to-market PnL attribution by leg,
//     aggregated into portfolio-level daily series, a capital base and
//     an equity curve spanning the full history.
//   - Exposure & Hedging: daily net delta/vega series annotated with
//     delta-hedge and vega-hedge activity flags inferred from quantity
//     changes in designated hedge instruments.
//   - Window Performance: rebased equity, daily returns, annualized
//     Sharpe, total return and max drawdown over any date range.
//   - Daily Changes: per-ticker day-over-day deltas and net position
//     direction for a chosen inspection date.
//
// All computations are pure functions over an immutable Book loaded
// once from the position log. This package serves as the foundational
// logic for the `dsp` command-line tool.
package dispersion
