package main

// ─── Viewport Windowing ──────────────────────────────────────────────────────

// visibleWindow computes the sub-range [start, end) of an n-item list to
// display in a viewport of the given height, plus the cursor's position
// relative to that window.
//
// A list shorter than the viewport is shown whole. Otherwise the cursor is
// kept a fixed margin below the top edge (3/7 of the height unless a
// non-negative margin is given), except near the ends of the list where the
// window pins to the boundary and the cursor approaches the edge.
func visibleWindow(height, n, cur, margin int) (start, end, rel int) {
	if n < height {
		return 0, n, cur
	}
	if margin < 0 {
		margin = height * 3 / 7
	}
	start = cur - margin
	if start < 0 {
		start = 0
	}
	end = start + height
	if end > n {
		end = n
	}
	if end-start < height {
		start = n - height
		end = n
	}
	return start, end, cur - start
}
