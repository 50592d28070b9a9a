// Package combine computes the distribution of the total charge of a
// [site.Table] of independent PTM sites.
//
// Four algorithms are provided:
//
//   - [Exact]: per-site power by squaring chained with direct convolution
//     (the Yergeev method, the reference implementation)
//   - [FFT]: the same chain with FFT convolution; identical results within
//     floating point tolerance, faster once distributions get wide
//   - [Gaussian]: a central limit approximation that only keeps the mean
//     and variance of each site; O(N) in sites
//   - [Enumerate]: brute-force enumeration of every charge combination,
//     guarded by a combination limit and a timeout; a validation oracle
//
// [Select] picks one of the first three from the total copy count:
//
//	res, err := combine.Select(table, combine.MethodAuto)
//	fmt.Println(res.Method, res.TotalCopies, res.PMF.Mean())
//
// # Algorithm Selection
//
// With the default thresholds:
//
//   - total copies <= 50: MethodExact
//   - total copies <= 200: MethodFFT
//   - more: MethodGaussian
//
// The thresholds trade exactness for speed; [WithThresholds] moves them and an
// explicit method is always honoured regardless of size.
//
// # Support
//
// Results span the full reachable support [n*Min, n*Max] of the table range
// for n total copies, zeros included, so a single neutral site yields
// {[0 0 1 0 0], -2} over -2..+2. Call [pmf.PMF.Trim] for the compact form
// {[1], 0}. The empty table yields the identity {[1], 0} directly.
//
// Every function is a pure function of its table. Rows must already sum to 1;
// apply a [site.Policy] first to renormalize lenient input.
package combine
