//go:build android

package main

import (
	"log"
	"time"

	"golang.org/x/mobile/app"
	"golang.org/x/mobile/event/lifecycle"
	"golang.org/x/mobile/event/paint"
	"golang.org/x/mobile/event/size"
	"golang.org/x/mobile/event/touch"
	"golang.org/x/mobile/exp/sensor"
	"golang.org/x/mobile/gl"
)

const sensorDelay = 20 * time.Millisecond

func main() {
	m := newMobileApp(nil)
	defer m.close()

	app.Main(func(a app.App) {
		var glctx gl.Context
		sensor.Notify(a)

		for e := range a.Events() {
			switch e := a.Filter(e).(type) {
			case lifecycle.Event:
				switch e.Crosses(lifecycle.StageVisible) {
				case lifecycle.CrossOn:
					ctx, ok := e.DrawContext.(gl.Context)
					if !ok {
						continue
					}
					glctx = ctx
					if err := sensor.Enable(sensor.Accelerometer, sensorDelay); err != nil {
						log.Printf("accelerometer unavailable, shake disabled: %v", err)
					}
					a.Send(paint.Event{})
				case lifecycle.CrossOff:
					if err := sensor.Disable(sensor.Accelerometer); err != nil {
						log.Printf("disable accelerometer: %v", err)
					}
					glctx = nil
				}
				if e.To == lifecycle.StageDead {
					return
				}

			case size.Event:
				m.resize(e.WidthPx, e.HeightPx, e.PixelsPerPt)

			case touch.Event:
				m.src.Handle(e)

			case sensor.Event:
				if e.Sensor == sensor.Accelerometer {
					m.accel(e.Data)
				}

			case paint.Event:
				if glctx == nil || e.External {
					continue
				}
				r, g, b := m.frame()
				glctx.ClearColor(r, g, b, 1)
				glctx.Clear(gl.COLOR_BUFFER_BIT)
				a.Publish()
				a.Send(paint.Event{})
			}
		}
	})
}
