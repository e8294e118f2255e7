// Package stimulus runs the full generator pipeline for one config.Run:
//
//	debruijn.Pattern → pwl.BuildDigital | pwl.BuildAnalog
//	  → pwl.Clip → pwlfile.WriteFile
//
// Digital runs produce two files (KindEnable, KindData); analog runs produce
// one (KindData). File names follow pwlfile.FileName inside Run.Output.
//
// The pipeline is synchronous. The context is checked before every file
// write, so a cancelled run leaves the files already written in place and
// reports ctx.Err().
package stimulus
