// Package descent runs fixed-budget gradient descent over point collections:
// seeded initialization, update rules and the driver loop.
//
// 🚀 Pipeline
//
//	InitialPoints ─▶ Run ─┬─▶ Function.Evaluate (energy + gradient)
//	                      └─▶ Stepper.Step      (next iterate)
//
// Update rules:
//
//   - SteepestDescent: P'[i] = P[i] − lr·∇E[i]
//   - Riemannian:      P'[i] = P[i] − clip(∇E[i]·(1−‖P[i]‖²)²/4, −c, c)·lr
//
// The Riemannian rule rescales the ambient gradient by the inverse Poincaré
// metric and clips each component to [−c, c] (c = 1 by default). Clipping is
// a heuristic and does not guarantee the iterate stays inside the disk, so
// every updated point is checked and a violation aborts the run.
//
// ⚙️ Usage:
//
//	pts, _ := descent.InitialPoints(21, descent.DefaultInitScale, seed)
//	res, err := descent.Run(fn, descent.SteepestDescent{}, pts,
//		descent.WithIterations(100001),
//		descent.WithLearningRate(1e-3),
//		descent.WithReportEvery(10000),
//		descent.WithOnReport(func(s descent.Sample) error {
//			fmt.Println(s.Iteration, s.Energy)
//			return nil
//		}),
//	)
//
// There is no early stopping and no retry: the loop always executes the
// configured number of iterations unless a numeric failure, a report hook
// error or context cancellation ends it.
package descent
