// Package los implements the line-of-sight smoothing pass: a
// Bresenham-style dual-axis segment walkability test, and the greedy
// furthest-visible-ancestor reduction that turns a jump-point-dense
// waypoint list into the shortest polyline with the same endpoints.
//
// SegmentWalkable scans by both x and y (not just the dominant axis)
// because a line grazing a corner must reject if the corner cell
// itself is blocked — scanning only the dominant axis misses exactly
// that case. See spec §9 Open Questions for two bugs this corrects
// relative to the original C smooth.c: max_y must come from comparing
// y1 and y2 (not x1 and x2), and the reduction loop must read y1 (not
// y2) out of the first endpoint when testing each candidate segment.
//
// Complexity: SegmentWalkable is O(|dx|+|dy|); Smooth is O(n^2) worst
// case over n waypoints (each of the n candidate anchors can require
// an O(n) backward scan), which is negligible next to the O(W*H*log
// (W*H)) search that produced the waypoints.
package los
