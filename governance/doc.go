// Package governance turns raw entity geometry into a coherence verdict: it
// builds a weighted graph complex from position vectors, runs the sheaf
// cohomology pipeline over a twisted trust sheaf, and scores how far the
// entities are from a globally consistent trust assignment.
//
// 🚀 The pipeline:
//
//	positions + edge list
//	  → graph complex                       (complex.NewGraphComplex)
//	  → per-vertex safety score exp(−‖p‖²)  (closer to origin ⇒ closer to 1)
//	  → per-edge decay  exp(−dist·coupling) clamped to [0.01, 1]
//	  → twisted unit-interval sheaf          (sheaf.NewTwisted)
//	  → TH⁰, TH¹ (when edges exist), Hodge HH⁰
//	  → obstructions of the safety assignment
//	  → CoherenceScore, RiskAmplification, Euler characteristic
//
// ✨ Interpreting the output:
//   - CoherenceScore = max(0, 1 − Σseverity / max(1, |edges|)); exactly 1
//     (within 1e-10, see IsCoherent) means every local value glues globally
//   - RiskAmplification = coupling^Σ(severity² | severity ≥ RiskThreshold),
//     and 1 when no obstruction reaches the threshold
//   - EulerCharacteristic = |non-trivial TH⁰| − |non-trivial TH¹|
//
// ⚙️ Usage:
//
//	cfg := governance.DefaultConfig()
//	a, err := governance.Analyze(cfg, positions, edges)
//	if err != nil { … }
//	if !a.IsCoherent() {
//	  for _, ob := range a.Obstructions { … }
//	}
//
// Thresholding the scores into allow/quarantine/deny decisions is the
// caller's policy; this package only measures.
package governance
