package dtopi

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-hep/internal/specfun"
)

// Next-to-leading-order corrections to the scalar-channel correlator.
// The twist-3 p-wave kernels are singular at q2 = 0; f_0 is continued
// to f_+ there before these are ever evaluated.

func t1TilTw2Theta1mRho(r1, r2, a2, a4 float64) float64 {
	r12 := r1 * r1
	r13 := r12 * r1
	r14 := r12 * r12
	r15 := r14 * r1
	r16 := r13 * r13
	r22 := r2 * r2
	r23 := r22 * r2
	r24 := r22 * r22
	r25 := r24 * r2

	ca0 := -r1 + 2.0*r12 - r13 +
		r2*(1.0-r1-r12+r13) +
		r22*(-1.0+2.0*r1-r12)
	ca2 := -15.0 + 40.0*r1 - 36.0*r12 + 12.0*r13 - r14 +
		r2*(35.0-88.0*r1+72.0*r12-20.0*r13+r14) +
		r22*(-26.0+60.0*r1-42.0*r12+8.0*r13) +
		r23*(6.0-12.0*r1+6.0*r12)
	ca4 := -210.0 + 756.0*r1 - 1050.0*r12 + 700.0*r13 - 225.0*r14 + 30.0*r15 - r16 +
		r2*(714.0-2436.0*r1+3150.0*r12-1900.0*r13+525.0*r14-54.0*r15+r16) +
		r22*(-924.0+2940.0*r1-3450.0*r12+1800.0*r13-390.0*r14+24.0*r15) +
		r23*(560.0-1620.0*r1+1650.0*r12-680.0*r13+90.0*r14) +
		r24*(-155.0+390.0*r1-315.0*r12+80.0*r13) +
		r25*(15.0-30.0*r1+15.0*r12)

	return -6.0 / (r2 * pow7(r1-r2)) * (pow3(r1-r2)*ca0 + pow2(r1-r2)*ca2*a2 + ca4*a4)
}

func t1TilTw2ThetaRhom1(r1, r2, a2, a4 float64) float64 {
	r12 := r1 * r1
	r13 := r12 * r1
	r14 := r12 * r12
	r15 := r14 * r1
	r22 := r2 * r2
	r23 := r22 * r2
	r24 := r22 * r22
	r25 := r24 * r2
	r26 := r23 * r23
	r27 := r24 * r23
	lr2 := math.Log(r2)

	ca00 := 1.0 - 2.0*r1 +
		r2*(-1.0+4.0*r1) +
		r22*(-1.0-2.0*r1) +
		r23
	ca0r2 := -r2*r1 + r22*(1.0+r1) - r23

	ca20 := (15.0 - 40.0*r1 + 36.0*r12 - 12.0*r13) +
		r2*(-35.0+93.0*r1-87.0*r12+24.0*r13) +
		r22*(21.0-45.0*r1+96.0*r12-12.0*r13) +
		r23*(-6.0-29.0*r1-45.0*r12) +
		r24*(-16.0+21.0*r1) +
		r25*21.0
	ca2r2 := r2*(-6.0*r13) +
		r22*(6.0*r13+18.0*r12) +
		r23*(12.0*r1+12.0*r12) +
		r24*(-24.0-12.0*r1) +
		r25*(-6.0)

	ca40 := 420.0 - 1512.0*r1 + 2100.0*r12 - 1400.0*r13 + 450.0*r14 - 60.0*r15 +
		r2*(-1428.0+4935.0*r1-6510.0*r12+4080.0*r13-1260.0*r14+120.0*r15) +
		r22*(1785.0-5775.0*r1+6900.0*r12-3600.0*r13+1590.0*r14-60.0*r15) +
		r23*(-1015.0+2820.0*r1-2040.0*r12+2240.0*r13-780.0*r14) +
		r24*(450.0-1200.0*r1-1080.0*r12-1320.0*r13) +
		r25*(-660.0-243.0*r1+630.0*r12) +
		r26*(313.0+975.0*r1) +
		r27*135.0
	ca4r2 := r2*(-15.0*r15) +
		r22*(75.0*r14+15.0*r15) +
		r23*(690.0*r13+135.0*r14) +
		r24*(150.0*r12+150.0*r13) +
		r25*(-705.0*r1-150.0*r12) +
		r26*(-195.0-135.0*r1) +
		r27*(-15.0)

	return -6.0 / (r2 * pow7(r1-r2)) * (pow4(r1-r2)*(ca00+ca0r2*lr2) +
		pow2(r1-r2)*(ca20+ca2r2*lr2)*a2 +
		(ca40/2.0+ca4r2*lr2)*a4)
}

func t1TilTw2Delta(r1, r2, a2, a4 float64) float64 {
	r12 := r1 * r1
	r13 := r12 * r1
	r14 := r12 * r12
	r15 := r13 * r12
	r16 := r13 * r13
	r17 := r14 * r13
	r22 := r2 * r2
	r23 := r22 * r2
	r24 := r22 * r22
	r25 := r23 * r22
	r26 := r23 * r23
	l1mr1 := math.Log(1.0 - r1)

	ca00 := r1 - r12 + r2*(-1.0+r12) + r22*(1.0-r1)
	ca0r1 := r1 - 2.0*r12 + r13 +
		r2*(-1.0+r1+r12-r13) +
		r22*(1.0-2.0*r1+r12)

	ca20 := 5.0*r1 - 10.0*r12 + 6.0*r13 - r14 +
		r2*(-5.0+12.0*r12-8.0*r13+r14) +
		r22*(10.0-12.0*r1+2.0*r13) +
		r23*(-6.0+8.0*r1-2.0*r12) +
		r24*(1.0-r1)
	ca2r1 := 5.0*r1 - 15.0*r12 + 16.0*r13 - 7.0*r14 + r15 +
		r2*(-5.0+5.0*r1+12.0*r12-20.0*r13+9.0*r14-r15) +
		r22*(10.0-22.0*r1+12.0*r12+2.0*r13-2.0*r14) +
		r23*(-6.0+14.0*r1-10.0*r12+2.0*r13) +
		r24*(1.0-2.0*r1+r12)

	ca40 := 42.0*r1 - 126.0*r12 + 140.0*r13 - 70.0*r14 + 15.0*r15 - r16 +
		r2*(-42.0+210.0*r12-280.0*r13+135.0*r14-24.0*r15+r16) +
		r22*(126.0-210.0*r1+150.0*r13-75.0*r14+9.0*r15) +
		r23*(-140.0+280.0*r1-150.0*r12+10.0*r14) +
		r24*(70.0-135.0*r1+75.0*r12-10.0*r13) +
		r25*(-15.0+24.0*r1-9.0*r12) +
		r26*(1.0-r1)
	ca4r1 := 42.0*r1 - 168.0*r12 + 266.0*r13 - 210.0*r14 + 85.0*r15 - 16.0*r16 + r17 +
		r2*(-42.0+42.0*r1+210.0*r12-490.0*r13+415.0*r14-159.0*r15+25.0*r16-r17) +
		r22*(126.0-336.0*r1+210.0*r12+150.0*r13-225.0*r14+84.0*r15-9.0*r16) +
		r23*(-140.0+420.0*r1-430.0*r12+150.0*r13+10.0*r14-10.0*r15) +
		r24*(70.0-205.0*r1+210.0*r12-85.0*r13+10.0*r14) +
		r25*(-15.0+39.0*r1-33.0*r12+9.0*r13) +
		r26*(1.0-2.0*r1+r12)

	return -6.0 / (r12 * pow7(r1-r2)) * (pow4(r1-r2)*(ca00*r1+ca0r1*l1mr1) +
		6.0*pow2(r1-r2)*(ca20*r1+ca2r1*l1mr1)*a2 +
		15.0*(ca40*r1+ca4r1*l1mr1)*a4)
}

func (ff *FormFactor) fTilNloTw2(k kinematics, q2, m2, selectWeight float64) (float64, error) {
	const eps = 1e-12

	a2 := ff.pion.A2(k.mu)
	a4 := ff.pion.A4(k.mu)
	r1 := q2 / k.mc2

	integrand := func(r2 float64) float64 {
		weight := (1.0 - selectWeight) + selectWeight*k.mc2*r2

		return (t1TilTw2Theta1mRho(r1, r2, a2, a4) +
			t1TilTw2ThetaRhom1(r1, r2, a2, a4) +
			t1TilTw2Delta(r1, r2, a2, a4)) * weight * math.Exp(-k.mc2*r2/m2)
	}

	integral, err := ff.integrator.Integrate(integrand, 1.0+eps, ff.s0TilD(q2)/k.mc2)
	if err != nil {
		return 0, fmt.Errorf("scalar twist-2 next-to-leading order: %w", err)
	}

	return k.mc2 * k.fpi * integral, nil
}

func t1TilTw3PTheta1mRho(r1, r2, lmu float64) float64 {
	l1 := math.Log((r2 - 1.0) / (r2 - r1))
	l2 := lmu + math.Log((r2-1.0)*(r2-1.0)/r2)

	return 2.0 * l1 * (r2*l2 - 1.0)
}

func t1TilTw3PThetaRhom1(r1, r2, lmu float64) float64 {
	logr1 := math.Log(math.Abs(r1))
	logr2 := math.Log(r2)
	log1mr1 := math.Log(1.0 - r1)
	logr2m1 := math.Log(r2 - 1.0)
	logr2mr1 := math.Log(r2 - r1)
	dl1 := (-1.0-5.0*math.Pi*math.Pi/3.0+
		2.0*(specfun.Dilog(1.0/r2)+2.0*specfun.Dilog(1.0/r1)+2.0*specfun.Dilog(r2)-
			2.0*specfun.Dilog(r2/r1)+4.0*specfun.Dilog((r2-1.0)/(r1-1.0))))*r1*r2 + r1
	dl2 := ((3.0+4.0*logr1+2.0*logr2m1-4.0*logr2mr1)*r1-2.0)*r2 - 2.0*r1
	dl3 := 8.0 * (logr2mr1 - log1mr1) * r1 * r2
	dl4 := 2.0 * ((1.0-2.0*lmu)*r1 - 1.0) * r2
	dl5 := 2.0 * ((-1.0+2.0*lmu)*r1 + 1.0) * r2

	return (dl1 + dl2*logr2 + dl3*logr2m1 + dl4*log1mr1 + dl5*logr2mr1) / r1
}

func t1TilTw3PDeltaRhom1(r1, r2, lmu float64) float64 {
	r12 := r1 * r1
	logr2 := math.Log(r2)
	logr2m1 := math.Log(r2 - 1.0)
	log1mr1 := math.Log(1.0 - r1)
	l1 := math.Log((r2 - 1.0) / (1.0 - r1))
	dl1 := (3.0+4.0*math.Pi*math.Pi/3.0-2.0*lmu+4.0*specfun.Dilog(1.0-r2))*r12*r2 + r1*r2
	dl2 := -2.0*r12 + (1.0-2.0*r1+r12)*r2
	dl3 := (4.0 - (6.0+4.0*l1)*r2) * r12
	dl4 := 2.0 * r12 * r2 * (logr2m1 + l1)
	dl5 := 2.0 * r12 * r2 * (1.0 - lmu)

	return (dl1 + dl2*log1mr1 + dl3*logr2m1 + dl4*logr2 + dl5*l1) / r12
}

func t1TilTw3SigmaTheta1mRho(r1, r2, lmu float64) float64 {
	lr2 := math.Log(r2)
	lr2m1 := math.Log(r2 - 1.0)
	lr2mr1 := math.Log(r2 - r1)

	return -6.0 * ((r1-r2)*(lr2mr1-lr2m1) + r1 - 1.0) * (r2*(lmu+2.0*lr2m1-lr2) - 1.0)
}

func t1TilTw3SigmaThetaRhom1(r1, r2, lmu float64) float64 {
	pi2 := math.Pi * math.Pi

	r12 := r1 * r1
	r22 := r2 * r2
	lr1 := math.Log(math.Abs(r1))
	l1mr1 := math.Log(1.0 - r1)
	lr2 := math.Log(r2)
	lr2m1 := math.Log(r2 - 1.0)
	lr2mr1 := math.Log(r2 - r1)
	dil := -2.0 * (2.0*specfun.Dilog(1.0/r1)+4.0*specfun.Dilog((r2-1.0)/(r1-1.0))+
		specfun.Dilog(1.0/r2)+2.0*specfun.Dilog(r2)-2.0*specfun.Dilog(r2/r1)+
		4.0*math.Log((r1-r2)/(r1-1.0))*lr2m1) * (r2 - r1) * r2
	dl1 := -(r2 - 1.0) * (2.0 - r2 + r1*(-1.0+2.0*r2))
	dl2 := ((r12*(r2-2.0)-r1*(r2-2.0)*r2+2.0*r22)/r1 + 2.0*(r2-r1)*r2*(2.0*(lr2mr1-lr1)-lr2m1)) * lr2
	dl3 := -2.0 * (r1 - 1.0) * r2 * (r2 - r1) * l1mr1 / r1
	dl4 := 2.0 * (r1 - 1.0) * r2 * (r2 - r1) * lr2mr1 / r1
	dl5 := 4.0 * (l1mr1 - lr2mr1) * (r2 - r1) * r2
	dl6 := 5.0 * (r2 - r1) * r2 / 3.0

	return 3.0 * (dl1 + dl2 + dl3 + dl4 + dl5*lmu + pi2*dl6 + dil)
}

func t1TilTw3SigmaDeltaRhom1(r1, r2, lmu float64) float64 {
	pi2 := math.Pi * math.Pi

	r12 := r1 * r1
	r13 := r12 * r1
	r22 := r2 * r2
	l1mr1 := math.Log(1.0 - r1)
	lr2 := math.Log(r2)
	lr2m1 := math.Log(r2 - 1.0)
	dl1 := (-17.0*r1 - r12 + (1.0-r1+2.0*r12)*r2) / r1
	dl2 := 2.0 * (2.0*r1 + r2 - 3.0) / 3.0
	dl3 := -4.0 * (-2.0 + r1 + r2) * (-1.0 + r2*(2.0*lr2m1-lr2)) * lr2m1
	dl4 := (4.0*r12 - 2.0*r13 + (-r13-4.0*r12+r1)*r2 + (3.0*r12-2.0*r1+1.0)*r22 +
		2.0*r12*r2*(-2.0+r1+r2)*(2.0*lr2m1-lr2)) * l1mr1 / r12
	dl5 := -4.0*(r2-1.0)*l1mr1*l1mr1 + 4.0*(r1+2.0*r2-3.0)*lr2m1*lr2m1
	dl6 := 2.0 * (5.0 + r2 - (l1mr1-lr2m1)*(r2-r1))
	dl7 := 4.0*(-3.0+r1+2.0*r2)*specfun.Dilog(1.0-r2) - 4.0*(r2-1.0)*specfun.Dilog(r1)

	return 3.0 * ((dl1+pi2*dl2+dl5+dl6*lmu+dl7)*r2 + dl3 + dl4)
}

func (ff *FormFactor) fTilNloTw3(k kinematics, q2, m2, selectWeight float64) (float64, error) {
	const eps = 1e-12

	mupi := ff.pion.MuPi(k.mu)
	r1 := q2 / k.mc2
	lmu := 2.0 * math.Log(k.mc/k.mu)

	integrand := func(r2 float64) float64 {
		weight := (1.0 - selectWeight) + selectWeight*k.mc2*r2

		return (1.0/(r2*(r2-r1))*(t1TilTw3PThetaRhom1(r1, r2, lmu)+t1TilTw3PTheta1mRho(r1, r2, lmu)+t1TilTw3PDeltaRhom1(r1, r2, lmu)) +
			1.0/(3.0*r2*pow2(r2-r1))*(t1TilTw3SigmaTheta1mRho(r1, r2, lmu)+t1TilTw3SigmaThetaRhom1(r1, r2, lmu)+t1TilTw3SigmaDeltaRhom1(r1, r2, lmu))) *
			weight * math.Exp(-k.mc2*r2/m2)
	}

	integral, err := ff.integrator.Integrate(integrand, 1.0+eps, ff.s0TilD(q2)/k.mc2)
	if err != nil {
		return 0, fmt.Errorf("scalar twist-3 next-to-leading order up to r2 = %g: %w", ff.s0TilD(q2)/k.mc2, err)
	}

	return k.fpi * mupi * k.mc * integral, nil
}
