package ffmt

// Vfctprintf drives format against args, streaming rendered characters
// through sink (nil meaning "count but discard"), and returns the count
// of characters that would have been emitted regardless of whether sink
// is set. args is never mutated by the call.
func Vfctprintf(sink SinkFunc, format string, args ...any) int {
	s := &Sink{Fn: sink}
	run(s, NewArgCursor(args...), format)
	return int(s.Len())
}

// run is the directive parser / driver shared by Vfctprintf and
// State.VPrintf. It walks format once, copying literal bytes straight
// to sink and, on '%', parsing flags/width/precision/size/specifier in
// order before dispatching to the installed Handler.
func run(sink *Sink, cursor *ArgCursor, format string) {
	i := 0
	n := len(format)
	for i < n {
		if format[i] != '%' {
			sink.Put(format[i])
			i++
			continue
		}
		i++
		if i >= n {
			sink.Put('%')
			break
		}

		st := State{sink: sink, args: cursor, Size: SizeDefault}

		for i < n {
			switch format[i] {
			case '0':
				st.Flags |= FlagZero
			case '-':
				st.Flags |= FlagLeft
			case '+':
				st.Flags |= FlagPlus
			case ' ':
				st.Flags |= FlagSpace
			case '#':
				st.Flags |= FlagAlt
			default:
				goto flagsDone
			}
			i++
		}
	flagsDone:

		if i < n && format[i] == '*' {
			i++
			v, _ := cursor.Next()
			w := toInt(v)
			if w < 0 {
				st.Flags |= FlagLeft
				w = -w
			}
			st.Width = w
		} else {
			for i < n && format[i] >= '0' && format[i] <= '9' {
				st.Width = st.Width*10 + int(format[i]-'0')
				i++
			}
		}

		if i < n && format[i] == '.' {
			i++
			st.PrecisionSet = true
			if i < n && format[i] == '*' {
				i++
				v, _ := cursor.Next()
				p := toInt(v)
				if p < 0 {
					p = 0
				}
				st.Precision = p
			} else {
				for i < n && format[i] >= '0' && format[i] <= '9' {
					st.Precision = st.Precision*10 + int(format[i]-'0')
					i++
				}
			}
		}

		if i < n {
			switch format[i] {
			case 'l':
				if i+1 < n && format[i+1] == 'l' {
					if SupportLongLong {
						st.Size = SizeLongLong
					} else {
						st.Size = SizeLong
					}
					i += 2
				} else {
					st.Size = SizeLong
					i++
				}
			case 'h':
				if i+1 < n && format[i+1] == 'h' {
					st.Size = SizeChar
					i += 2
				} else {
					st.Size = SizeShort
					i++
				}
			case 't', 'j', 'z':
				if SupportPtrdiffT {
					st.Size = SizeLongLong
					i++
				}
			}
		}

		if i >= n {
			break
		}
		spec := format[i]
		i++
		st.Specifier = spec

		h := lookupSpecifier(spec)
		if h == nil {
			emitUnknownSpecifier(sink, spec)
			continue
		}
		h(&st)
	}
}

func toInt(v any) int {
	switch x := v.(type) {
	case int:
		return x
	case int8:
		return int(x)
	case int16:
		return int(x)
	case int32:
		return int(x)
	case int64:
		return int(x)
	case uint:
		return int(x)
	case uint8:
		return int(x)
	case uint16:
		return int(x)
	case uint32:
		return int(x)
	case uint64:
		return int(x)
	default:
		return 0
	}
}

func emitUnknownSpecifier(sink *Sink, b byte) {
	putStr(sink, "%!(unknown specifier='")
	if b >= 0x20 && b <= 0x7E {
		sink.Put(b)
	} else {
		sink.Put('\\')
		sink.Put('x')
		sink.Put(hexDigit(b >> 4))
		sink.Put(hexDigit(b & 0xF))
	}
	putStr(sink, "')")
}

func hexDigit(d byte) byte {
	if d < 10 {
		return '0' + d
	}
	return 'A' + (d - 10)
}
