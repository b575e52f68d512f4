// Package solvekit is your in-memory toolbox for classic search and
// constraint-satisfaction problems — from generic state-space search to
// weighted graphs, shortest paths, spanning trees and backtracking.
//
// 🚀 What is solvekit?
//
//	A small, generics-first, zero-dependency library that brings together:
//		• Core primitives: index-addressed undirected graphs over any vertex type
//		• State-space search: BFS, DFS, A* over arbitrary comparable states
//		• Shortest paths: Dijkstra with lazy decrease-key
//		• Minimum spanning trees: Prim, Kruskal
//		• Constraint satisfaction: generic backtracking with pluggable constraints
//		• Grids: maze parsing, successor adapters and admissible heuristics
//
// ✨ Why choose solvekit?
//
//   - Small surface – a handful of functions per package, named after
//     what they compute
//   - Generic throughout – states, vertices and domains are type parameters
//   - Nothing but Go – the only external dependency is the test suite's
//     assertion library
//   - Observable – hooks (OnVisit, OnAssign) and contexts on every solver
//
// Under the hood, everything is organized under seven subpackages:
//
//	core/     — index-addressed Graph and WeightedGraph over any comparable vertex type
//	pqueue/   — generic binary-heap priority queue
//	search/   — BFS, DFS and A* over caller-defined successor functions
//	dijkstra/ — single-source shortest paths on WeightedGraph
//	mst/      — Prim and Kruskal spanning trees
//	csp/      — backtracking constraint solver with NotEqual and AllDifferent
//	grid/     — rectangular mazes adapted to search and core
//
// Quick ASCII example:
//
//	    S . # .
//	    . # . .
//	    . . . G
//
//	a maze Parse turns into a Grid, whose Successors feed BFS or A*
//	straight from S to G.
//
// Dive into the per-package docs and examples/ for full scenarios: maze
// escapes, map coloring, eight queens and intercity route planning.
//
//	go get github.com/solvekit/solvekit
package solvekit
