// SPDX-License-Identifier: MIT

// Package session orchestrates one structure through repeated
// perturbation cycles.
//
// Lifecycle:
//
//	Constructed ──► (Enlarged) ──► Initialized ──► { Exchanged | Jittered | Exported }*
//	                    ▲               ▲                        │
//	                    └── Enlarge ────┴────── Initialize ◄─────┘
//
// A Session owns its typed structure and the current flat record
// exclusively; nothing is shared between sessions and no method is safe
// for concurrent use. Enlarging the structure makes the record stale, so
// RunExchange, ModifyCellSize and Export refuse to run (ErrNotInitialized)
// until Initialize re-derives it. Calling Initialize between export cycles
// resets perturbation history while keeping the same base structure.
//
// Randomness and logging are injected:
//
//	s, _ := session.New(st,
//		session.WithSeed(42),
//		session.WithLogger(slog.Default()),
//		session.WithMinSites(64),
//	)
//	for i := 1; i <= 3; i++ {
//		_ = s.Initialize().RunExchange(5)
//		_ = s.ModifyCellSize()
//		_ = s.Export(format.Poscar, fmt.Sprintf("POSCAR%d", i))
//	}
package session
