// Package zebra composes product and shipping labels from typed elements
// and renders them as ZPL command streams for Zebra thermal printers.
//
// A label is bound at construction to a physical size and a printer
// configuration (head density plus loaded media), and rejects sizes the
// printer cannot hold. Elements carry millimetre measurements and validate
// themselves against the label as they are added; rendering converts every
// measurement to whole printer dots, either at the printer's own density or
// at any other density for previewing.
//
//	media, _ := zebra.NewContinuousMedia(110)
//	printer := zebra.PrinterConfiguration{Density: zebra.DPI203, Media: media}
//
//	label, err := zebra.NewLabel(zebra.Size4x6Inch, printer)
//	if err != nil {
//		return err
//	}
//	if err := label.Add(zebra.NewDefaultFont('0', 5, 5)); err != nil {
//		return err
//	}
//	if err := label.Add(zebra.NewText(zebra.At(10, 10), "FRAGILE")); err != nil {
//		return err
//	}
//	fmt.Println(label.Render())
package zebra
