package ui

import "github.com/hajimehoshi/ebiten/v2"

var perfOn = true // 以高刷新启动

// enterPerf 对局进行中保持正常刷新率
func enterPerf() {
	if perfOn {
		return
	}
	ebiten.SetVsyncEnabled(true)
	ebiten.SetTPS(60)
	perfOn = true
}

// leavePerf 对局结束后降档，等待 R 键即可
func leavePerf() {
	if !perfOn {
		return
	}
	ebiten.SetVsyncEnabled(false)
	ebiten.SetTPS(10)
	perfOn = false
}

func ensurePerf(active bool) {
	if active {
		enterPerf()
	} else {
		leavePerf()
	}
}
