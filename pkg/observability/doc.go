/*
Package observability exposes run metrics for the generator.

Metrics are collected through domain.Hooks, so the art and music passes stay
unaware of Prometheus. A run can export its counters to a textfile that the
node_exporter textfile collector picks up.

# Metrics

  - artgen_shapes_drawn_total{category}
  - artgen_shapes_skipped_total{category}
  - artgen_notes_composed_total{pitch}
*/
package observability
